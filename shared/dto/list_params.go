package dto

import (
	"net/http"
	"strings"

	"comfort/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// ListParams is the typed read-query description built from list query
// parameters: an ordering plus an optional field projection. Filters are
// built separately per resource, see the handlers.
type ListParams struct {
	SortBy  string `json:"sort_by"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`

	// Fields holds the projected columns. Empty means all columns.
	Fields []string `json:"fields"`

	// RequestedFields keeps the raw (pre-mapping) projection names for
	// shaping the response payload.
	RequestedFields []string `json:"requested_fields"`

	// Projected records that a fields parameter was present at all. It can
	// be true with RequestedFields empty: a projection where no token maps
	// to a known column returns id-only payloads rather than full records.
	Projected bool `json:"projected"`
}

// FromRequest populates ListParams from the HTTP request.
//
// `columns` maps the externally visible field names to store columns and
// doubles as the allow-list: a sortBy or fields token that maps to nothing
// is silently ignored. When sortBy is absent (or unknown) the resource
// default applies: defaultSort descending.
// Example:
//
//	p := &dto.ListParams{}
//	p.FromRequest(req, model.QueryColumns, model.FieldCheckInDate)
func (p *ListParams) FromRequest(r *http.Request, columns map[string]string, defaultSort string) {
	queryParams := r.URL.Query()

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		if column, ok := columns[sortBy]; ok {
			p.SortBy = column
			p.SortDir = SortDirAsc

			if queryParams.Get(constant.RequestParamSortOrder) == "desc" {
				p.SortDir = SortDirDesc
			}
		}
	}

	if p.SortBy == "" {
		p.SortBy = defaultSort
		p.SortDir = SortDirDesc
	}

	if fields := queryParams.Get(constant.RequestParamFields); fields != "" {
		p.Projected = true

		for _, token := range strings.Split(fields, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}

			column, ok := columns[token]
			if !ok {
				continue
			}

			p.RequestedFields = append(p.RequestedFields, token)
			p.Fields = append(p.Fields, column)
		}
	}
}
