package databases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/parsa000721/records/models"
)

// DefaultStateKey is the key holding the serialized case collection
const DefaultStateKey = "cases"

// ErrMalformedState is returned when the stored collection cannot be parsed
var ErrMalformedState = errors.New("malformed stored case records")

// CaseRecordDatabase contains the methods to use with the case record collection.
// The whole collection is read and written as one unit.
type CaseRecordDatabase interface {
	Load(ctx context.Context) ([]models.CaseRecord, error)
	Save(ctx context.Context, records []models.CaseRecord) error
}

type caseRecordDatabase struct {
	kv  KeyValueStore
	key string
}

// NewCaseRecordDatabase initializes a new case record database stored under key
func NewCaseRecordDatabase(kv KeyValueStore, key string) CaseRecordDatabase {
	if key == "" {
		key = DefaultStateKey
	}
	return &caseRecordDatabase{
		kv:  kv,
		key: key,
	}
}

// Load returns the stored collection. A missing key is an empty collection;
// an unparseable blob is an empty collection plus ErrMalformedState.
func (c *caseRecordDatabase) Load(ctx context.Context) ([]models.CaseRecord, error) {
	blob, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return []models.CaseRecord{}, fmt.Errorf("read %s: %w", c.key, err)
	}
	if !found {
		return []models.CaseRecord{}, nil
	}

	var records []models.CaseRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		return []models.CaseRecord{}, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if records == nil {
		records = []models.CaseRecord{}
	}
	return records, nil
}

// Save serializes the full collection and writes it under the key
func (c *caseRecordDatabase) Save(ctx context.Context, records []models.CaseRecord) error {
	if records == nil {
		records = []models.CaseRecord{}
	}
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, blob); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}
