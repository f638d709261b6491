package service

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/dtalero78/siigo-retiros/internal/model"
	"github.com/dtalero78/siigo-retiros/internal/repository"
	"github.com/dtalero78/siigo-retiros/internal/survey"
)

// ExportService writes the response table as CSV for the HR team.
// Identity columns come first, then one column per question of the
// catalog in catalog order, each cell the raw submitted answer straight
// from the stored blob. The column order is fixed per catalog:
// downstream spreadsheets reference columns by position.
type ExportService struct {
	responses *repository.ResponseRepository
	resolver  *survey.Resolver
}

func NewExportService(responses *repository.ResponseRepository, resolver *survey.Resolver) *ExportService {
	return &ExportService{responses: responses, resolver: resolver}
}

var identityHeader = []string{
	"ID",
	"Nombre completo",
	"Identificación",
	"Área",
	"País",
	"Fecha de retiro",
	"Tiempo en la empresa",
	"Último líder",
	"Fecha de respuesta",
}

// WriteCSV streams every stored response as CSV. area narrows the
// export and selects the catalog whose questions become the columns;
// empty exports everything against the general catalog.
func (s *ExportService) WriteCSV(w io.Writer, area string) error {
	records, err := s.responses.FindAllForAggregation(area)
	if err != nil {
		return err
	}
	return writeRecords(w, s.resolver.Resolve(area), records)
}

func writeRecords(w io.Writer, cat *survey.Catalog, records []model.Response) error {
	cw := csv.NewWriter(w)

	header := append([]string{}, identityHeader...)
	for _, q := range cat.Questions {
		header = append(header, q.Key())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range records {
		if err := cw.Write(exportRow(cat, &records[i])); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func exportRow(cat *survey.Catalog, r *model.Response) []string {
	row := []string{
		strconv.FormatUint(uint64(r.ID), 10),
		r.FullName,
		r.Identification,
		r.Area,
		r.Country,
		formatDate(r.ExitDate),
		r.Tenure,
		r.LastLeader,
		r.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	sub := survey.ParseSubmission(r.AllResponses)
	for _, q := range cat.Questions {
		row = append(row, rawCell(sub, q))
	}
	return row
}

// rawCell renders the raw answer for one question. Objects (the matrix
// case) are JSON-stringified; matrix answers submitted as flat item
// keys are reassembled into an item-keyed object first.
func rawCell(sub survey.Submission, q survey.Question) string {
	if v, ok := sub.Answer(q.Key()); ok {
		switch v.(type) {
		case map[string]interface{}, []interface{}:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
		return sub.String(q.Key())
	}

	if q.Type == survey.TypeMatrix {
		byItem := map[string]string{}
		for i, item := range q.Items {
			if v := sub.String(q.ItemKey(i)); v != "" {
				byItem[item] = v
			}
		}
		if len(byItem) > 0 {
			if b, err := json.Marshal(byItem); err == nil {
				return string(b)
			}
		}
	}
	return ""
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
