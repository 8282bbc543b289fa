package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"propdesk/model"
)

// ParseTenantCSV reads a tenant roster. first_name and last_name are
// required columns; email, phone, unit_id, lease_start, lease_end and status
// are read when present. Rows without a name are skipped.
func ParseTenantCSV(r io.Reader) ([]model.Tenant, error) {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex, err := getColIndex(header, []string{"first_name", "last_name"})
	if err != nil {
		return nil, err
	}

	var tenants []model.Tenant
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("WARN: tenant CSV line %d unreadable (skipped): %v", line, err)
			continue
		}
		get := fieldGetter(colIndex, rec)

		t := model.Tenant{
			FirstName:  get("first_name"),
			LastName:   get("last_name"),
			Email:      get("email"),
			Phone:      get("phone"),
			LeaseStart: optional(get("lease_start")),
			LeaseEnd:   optional(get("lease_end")),
			Status:     strings.ToLower(get("status")),
		}
		if t.FirstName == "" || t.LastName == "" {
			log.Printf("WARN: tenant CSV line %d has no name (skipped)", line)
			continue
		}
		if t.Status == "" {
			t.Status = model.TenantStatusCurrent
		}
		if raw := get("unit_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.Printf("WARN: tenant CSV line %d bad unit_id %q (skipped)", line, raw)
				continue
			}
			t.UnitID = &id
		}
		tenants = append(tenants, t)
	}
	return tenants, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
