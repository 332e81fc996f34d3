package sourcebun

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/agronomiq/soilreport/report"
)

// readingModel is one parameter reading in long format: a test carries one row
// per measured parameter, so new parameters need no schema change.
type readingModel struct {
	bun.BaseModel `bun:"table:soil_test_readings,alias:soil_test_readings"`

	ID        int64   `bun:",pk,autoincrement"`
	TestID    string  `bun:"test_id,notnull"`
	Parameter string  `bun:"parameter,notnull"`
	Value     float64 `bun:"value,notnull"`
}

// Source reads soil-test records from a Bun-backed database.
type Source struct {
	DB *bun.DB
}

// NewSource creates a Bun-backed RecordSource.
func NewSource(db *bun.DB) *Source {
	return &Source{DB: db}
}

// Init creates the readings table if it does not exist.
func (s *Source) Init(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return report.NewError(report.KindNotImpl, "source database not configured", nil)
	}
	_, err := s.DB.NewCreateTable().Model((*readingModel)(nil)).IfNotExists().Exec(ctx)
	return err
}

// Insert stores all readings of a record.
func (s *Source) Insert(ctx context.Context, record report.TestRecord) error {
	if s == nil || s.DB == nil {
		return report.NewError(report.KindNotImpl, "source database not configured", nil)
	}
	if record.TestID == "" {
		return report.NewError(report.KindValidation, "test ID is required", nil)
	}

	models := make([]readingModel, 0, len(record.Values))
	for parameter, value := range record.Values {
		models = append(models, readingModel{
			TestID:    record.TestID,
			Parameter: parameter,
			Value:     value,
		})
	}
	if len(models) == 0 {
		return nil
	}
	_, err := s.DB.NewInsert().Model(&models).Exec(ctx)
	return err
}

// Fetch reads every reading and folds them into records. Record order follows
// first appearance in the result set, which is ordered by insertion.
func (s *Source) Fetch(ctx context.Context) ([]report.TestRecord, error) {
	if s == nil || s.DB == nil {
		return nil, report.NewError(report.KindNotImpl, "source database not configured", nil)
	}

	models := make([]readingModel, 0)
	if err := s.DB.NewSelect().Model(&models).Order("id ASC").Scan(ctx); err != nil {
		return nil, report.NewError(report.KindInternal, "soil test query failed", err)
	}

	index := map[string]int{}
	records := make([]report.TestRecord, 0)
	for _, model := range models {
		i, ok := index[model.TestID]
		if !ok {
			i = len(records)
			index[model.TestID] = i
			records = append(records, report.TestRecord{
				TestID: model.TestID,
				Values: map[string]float64{},
			})
		}
		records[i].Values[model.Parameter] = model.Value
	}
	return records, nil
}
