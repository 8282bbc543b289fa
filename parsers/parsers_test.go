package parsers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBankCSV(t *testing.T) {
	input := "\xEF\xBB\xBFDate,Amount,Description,Account\n" +
		"2024-03-01,-1250.00,ACME PROPERTY INSURANCE,Operating\n" +
		"03/05/2024,\"$2,400.00\",RENT UNIT 4B,Operating\n" +
		"not-a-date,10.00,BROKEN,Operating\n" +
		"2024-03-07,(45.10),CITY WATER,Operating\n" +
		"2024-03-08,abc,BAD AMOUNT,Operating\n"

	records, err := ParseBankCSV(strings.NewReader(input), EncodingUTF8)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "2024-03-01", records[0].PostedDate)
	assert.True(t, records[0].Amount.Equal(decimal.RequireFromString("-1250")))
	assert.Equal(t, "Operating", records[0].Account)

	assert.Equal(t, "2024-03-05", records[1].PostedDate)
	assert.True(t, records[1].Amount.Equal(decimal.RequireFromString("2400")))
	assert.Equal(t, "RENT UNIT 4B", records[1].Description)

	assert.True(t, records[2].Amount.Equal(decimal.RequireFromString("-45.10")))
}

func TestParseBankCSVWindows1252(t *testing.T) {
	// 0xE9 is "é" in Windows-1252.
	input := []byte("date,amount,description\n2024-01-02,15.00,CAF\xE9 DU COIN\n")

	records, err := ParseBankCSV(bytes.NewReader(input), EncodingWindows1252)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CAFé DU COIN", records[0].Description)
}

func TestParseBankCSVErrors(t *testing.T) {
	_, err := ParseBankCSV(strings.NewReader(""), EncodingUTF8)
	assert.Error(t, err)

	_, err = ParseBankCSV(strings.NewReader("date,amount\n2024-01-01,1\n"), EncodingUTF8)
	assert.ErrorContains(t, err, "description")

	_, err = ParseBankCSV(strings.NewReader("date,amount,description\n"), "ebcdic")
	assert.ErrorContains(t, err, "unsupported encoding")
}

func TestParseTenantCSV(t *testing.T) {
	input := "First Name,Last Name,Email,Unit ID,Lease Start,Status\n" +
		"Ada,Lovelace,ada@example.com,3,2024-01-01,\n" +
		",Nameless,x@example.com,,,\n" +
		"Alan,Turing,alan@example.com,,,PROSPECT\n" +
		"Bad,Unit,bad@example.com,x,,\n"

	tenants, err := ParseTenantCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tenants, 2)

	assert.Equal(t, "Ada", tenants[0].FirstName)
	require.NotNil(t, tenants[0].UnitID)
	assert.Equal(t, int64(3), *tenants[0].UnitID)
	require.NotNil(t, tenants[0].LeaseStart)
	assert.Equal(t, "2024-01-01", *tenants[0].LeaseStart)
	assert.Nil(t, tenants[0].LeaseEnd)
	assert.Equal(t, "current", tenants[0].Status)

	assert.Nil(t, tenants[1].UnitID)
	assert.Equal(t, "prospect", tenants[1].Status)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" €1,000.5 ")
	require.NoError(t, err)
	assert.Equal(t, "1000.5", d.String())

	_, err = ParseAmount("")
	assert.Error(t, err)
}
