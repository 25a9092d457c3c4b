// Copyright (c) 2026 Jericho Transport. All rights reserved.
// Author: dev@jerichotransport.com

package shipments

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// # Reference Numbers
//
// Every shipment gets a human-legible reference of the form
//
//	<FREIGHT_CODE>-<MOVEMENT_CODE>-<YEAR>-<SEQUENCE>
//
// e.g. TRK-EXP-2026-0042. The sequence counts up within the
// (freight code, direction, year) triple, so each lane of business starts
// at 0001 every January.

const (
	movementCodeImport = "IMP"
	movementCodeExport = "EXP"
	sequenceDigits     = 4
)

// NormalizeFreightCode uppercases the submitted freight type for use in a
// reference number, defaulting to the trucking code when absent.
func NormalizeFreightCode(freightType string) string {
	code := strings.ToUpper(strings.TrimSpace(freightType))
	if code == "" {
		return DefaultFreightCode
	}
	return code
}

// MovementCode returns the three-letter direction code for a process type.
func MovementCode(processType ProcessType) string {
	if processType == ProcessExport {
		return movementCodeExport
	}
	return movementCodeImport
}

// ReferencePrefix returns the prefix shared by all reference numbers in one
// (freight code, direction, year) lane, including the trailing separator.
func ReferencePrefix(freightCode string, processType ProcessType, year int) string {
	return fmt.Sprintf("%s-%s-%d-", freightCode, MovementCode(processType), year)
}

// BuildReferenceNumber formats a complete reference number. The sequence is
// zero-padded to four digits and widens naturally beyond 9999.
func BuildReferenceNumber(freightCode string, processType ProcessType, year int, sequence int) string {
	return fmt.Sprintf("%s-%s-%d-%0*d", freightCode, MovementCode(processType), year, sequenceDigits, sequence)
}

// ParseSequence extracts the numeric sequence from a reference number. It
// returns false for malformed references, which are simply skipped when
// computing the next sequence.
func ParseSequence(referenceNumber string) (int, bool) {
	separatorIndex := strings.LastIndex(referenceNumber, "-")
	if separatorIndex < 0 || separatorIndex == len(referenceNumber)-1 {
		return 0, false
	}
	sequence, err := strconv.Atoi(referenceNumber[separatorIndex+1:])
	if err != nil || sequence < 0 {
		return 0, false
	}
	return sequence, true
}

// NextSequence returns the successor of the highest sequence found among the
// given reference numbers, starting at 1 when none parse.
func NextSequence(referenceNumbers []string) int {
	highest := 0
	for _, referenceNumber := range referenceNumbers {
		if sequence, ok := ParseSequence(referenceNumber); ok && sequence > highest {
			highest = sequence
		}
	}
	return highest + 1
}

// ReferenceClock abstracts the server clock so tests can pin the year.
type ReferenceClock func() time.Time
