package importer

import (
	"encoding/csv"
	"fmt"
	"strings"

	"event-org-console/internal/model"
	apperrors "event-org-console/pkg/app_errors"
	"event-org-console/pkg/logger"

	"go.uber.org/zap"
)

// columnRule 表頭以不分大小寫子字串比對；順序即優先順序
type columnRule struct {
	needle string
	field  model.GuestField
}

var columnRules = []columnRule{
	{"email", model.FieldEmail},
	{"phone", model.FieldPhone},
	{"company", model.FieldCompany},
	{"ticket", model.FieldTicketType},
	{"dietary", model.FieldDietary},
	{"allerg", model.FieldAllergies},
	{"name", model.FieldName},
}

// Result 匯入結果。Guests 皆為 IsNew 並帶批次內唯一的暫時 id
type Result struct {
	Guests  []model.Guest `json:"guests"`
	Skipped int           `json:"skipped"`
	Message string        `json:"message"`
}

// Inputs 轉成 GuestStore.BulkAppend 的輸入
func (r Result) Inputs() []model.GuestInput {
	inputs := make([]model.GuestInput, len(r.Guests))
	for i, g := range r.Guests {
		inputs[i] = g.Input()
	}
	return inputs
}

type Parser struct {
	log *zap.Logger
}

func NewParser() *Parser {
	return &Parser{log: logger.WithComponent("importer")}
}

// Parse 將 CSV 文字轉成賓客。失敗時回傳 *ParseError 與帶訊息的空結果，不做部分匯入
func (p *Parser) Parse(content string) (Result, error) {
	lines := nonBlankLines(content)
	if len(lines) < 2 {
		return p.fail(&apperrors.ParseError{Reason: "csv needs a header row and at least one data row"})
	}

	header := splitRow(lines[0])
	columns := matchColumns(header)
	if !hasField(columns, model.FieldEmail) {
		return p.fail(&apperrors.ParseError{Line: 1, Reason: "no email column in header"})
	}

	result := Result{Guests: make([]model.Guest, 0, len(lines)-1)}
	for _, line := range lines[1:] {
		record := splitRow(line)

		var in model.GuestInput
		for i, cell := range record {
			field, ok := columns[i]
			if !ok {
				continue
			}
			assign(&in, field, cleanCell(cell))
		}
		if in.Email == "" {
			result.Skipped++
			continue
		}
		result.Guests = append(result.Guests, in.ToGuest())
	}

	result.Message = fmt.Sprintf("imported %d guests", len(result.Guests))
	if result.Skipped > 0 {
		result.Message += fmt.Sprintf(", skipped %d rows without email", result.Skipped)
	}
	p.log.Info("csv parsed", zap.Int("guests", len(result.Guests)), zap.Int("skipped", result.Skipped))
	return result, nil
}

// splitRow 每行各自解析，引號不會跨行。引號不成對時退回逗號切分，交給 cleanCell 去引號
func splitRow(line string) []string {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	record, err := reader.Read()
	if err != nil {
		return strings.Split(line, ",")
	}
	return record
}

func (p *Parser) fail(err *apperrors.ParseError) (Result, error) {
	p.log.Warn("csv import aborted", zap.Error(err))
	return Result{Guests: []model.Guest{}, Message: err.Error()}, err
}

// nonBlankLines 統一 \r\n、\r、\n 並略過空白行
func nonBlankLines(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	lines := make([]string, 0)
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func matchColumns(header []string) map[int]model.GuestField {
	columns := make(map[int]model.GuestField, len(header))
	taken := make(map[model.GuestField]bool)
	for i, h := range header {
		name := strings.ToLower(cleanCell(h))
		for _, rule := range columnRules {
			if strings.Contains(name, rule.needle) {
				if !taken[rule.field] {
					columns[i] = rule.field
					taken[rule.field] = true
				}
				break
			}
		}
	}
	return columns
}

func hasField(columns map[int]model.GuestField, field model.GuestField) bool {
	for _, f := range columns {
		if f == field {
			return true
		}
	}
	return false
}

// cleanCell 去除前後空白，以及前後各一個單引號或雙引號
func cleanCell(cell string) string {
	v := strings.TrimSpace(cell)
	if len(v) > 0 && (v[0] == '"' || v[0] == '\'') {
		v = v[1:]
	}
	if len(v) > 0 && (v[len(v)-1] == '"' || v[len(v)-1] == '\'') {
		v = v[:len(v)-1]
	}
	return strings.TrimSpace(v)
}

func assign(in *model.GuestInput, field model.GuestField, value string) {
	switch field {
	case model.FieldName:
		in.Name = value
	case model.FieldEmail:
		in.Email = value
	case model.FieldPhone:
		in.Phone = value
	case model.FieldCompany:
		in.Company = value
	case model.FieldTicketType:
		in.TicketTypeRef = value
	case model.FieldDietary:
		in.Dietary = value
	case model.FieldAllergies:
		in.Allergies = value
	}
}
