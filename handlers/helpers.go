package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Shared validation shapes. Email is the basic local@domain.tld check the
// frontend applies; phone is exactly 10 digits.
var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	rePhone = regexp.MustCompile(`^[0-9]{10}$`)
)

// newReferenceID builds the human-readable reference handed back to the
// submitter, e.g. RTI-2026-4821.
func newReferenceID(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().Year(), 1000+rand.Intn(9000))
}

// genReferenceID exists so tests can force suffix collisions.
var genReferenceID = newReferenceID

// maxIDAttempts bounds how often a collided 4-digit suffix is redrawn
// before the insert is given up as failed.
const maxIDAttempts = 5

// insertWithFreshID inserts rec, regenerating the reference ID when the
// unique index reports that the 4-digit suffix collided with an existing
// row. Anything other than a duplicate-key error is returned as-is.
func insertWithFreshID(db *gorm.DB, prefix string, set func(id string), rec any) error {
	var err error
	for i := 0; i < maxIDAttempts; i++ {
		set(genReferenceID(prefix))
		if err = db.Create(rec).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

// joinPaths turns staged file paths into the nullable comma-joined
// column value.
func joinPaths(paths []string) *string {
	if len(paths) == 0 {
		return nil
	}
	joined := strings.Join(paths, ",")
	return &joined
}
