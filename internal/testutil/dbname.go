// Package testutil holds helpers for the MongoDB-backed integration tests.
package testutil

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// maxDatabaseName leaves room under MongoDB's 64 byte limit for the sequence suffix.
const maxDatabaseName = 48

var dbSeq atomic.Int64

// DatabaseName turns a test name into a unique MongoDB database name.
// Characters MongoDB rejects in database names become underscores.
func DatabaseName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, testName)
	if len(name) > maxDatabaseName {
		name = name[:maxDatabaseName]
	}
	return name + "_" + strconv.FormatInt(dbSeq.Add(1), 10)
}
