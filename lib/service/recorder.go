package service

import (
	"context"

	"github.com/google/uuid"
)

// newRecordID returns a fresh UUIDv7. The ids are time-ordered, so
// lexicographic order of record ids is also creation order, which is what
// the id-cursor pagination relies on.
func newRecordID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// insertOnce persists a record with a conditional write: if a record with
// the same id already exists nothing is overwritten and ErrDuplicateRecord
// is returned. This guards against accidental duplicate submission on retry,
// not against semantic duplicates.
func (svc *FactorhubService) insertOnce(ctx context.Context, model interface{}) error {
	res, err := svc.DB.NewInsert().Model(model).On("CONFLICT (id) DO NOTHING").Exec(ctx)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrDuplicateRecord
	}
	return nil
}
