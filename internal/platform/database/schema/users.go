package schema

// RefUserTable represents the 'users' table
type RefUserTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	CreatedAt    string
}

// RefUser is the schema definition for users
var RefUser = RefUserTable{
	Table:        "users",
	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	Name:         "name",
	Role:         "role",
	CreatedAt:    "created_at",
}

func (t RefUserTable) Columns() []string {
	return []string{t.ID, t.Email, t.PasswordHash, t.Name, t.Role, t.CreatedAt}
}
