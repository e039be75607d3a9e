package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidBoolean(t *testing.T) {
	assert.True(t, IsValid(BOOLEAN, true))
	assert.True(t, IsValid(BOOLEAN, false))
	assert.False(t, IsValid(BOOLEAN, "true"))
}

func TestIsValidText(t *testing.T) {
	assert.True(t, IsValid(TEXT, "hello"))
	assert.False(t, IsValid(TEXT, 5))
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValid(URL, "http://example.com/badge"))
	assert.True(t, IsValid(URL, "https://example.com/badge"))
	assert.False(t, IsValid(URL, "ftp://example.com/badge"))
	assert.False(t, IsValid(URL, "not a url"))
	assert.False(t, IsValid(URL, 5))
}

func TestIsValidIRI(t *testing.T) {
	assert.True(t, IsValid(IRI, "http://example.com/a1"), "absolute URL")
	assert.True(t, IsValid(IRI, "_:b12"), "blank node id")
	assert.True(t, IsValid(IRI, "urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479"), "urn:uuid")
	assert.False(t, IsValid(IRI, "urn:uuid:not-a-uuid"))
	assert.False(t, IsValid(IRI, ""))
	assert.False(t, IsValid(IRI, "not-an-iri"))
}

func TestIsValidDataURI(t *testing.T) {
	assert.True(t, IsValid(DataURI, "data:image/png;base64,aGVsbG8="))
	assert.False(t, IsValid(DataURI, "http://example.com/image.png"))
}

func TestIsValidDataURIOrURL(t *testing.T) {
	assert.True(t, IsValid(DataURIOrURL, "data:image/png;base64,aGVsbG8="))
	assert.True(t, IsValid(DataURIOrURL, "http://example.com/image.png"))
	assert.False(t, IsValid(DataURIOrURL, "not-a-uri"))
}

func TestIsValidDatetime(t *testing.T) {
	assert.True(t, IsValid(DATETIME, "2018-01-01T00:00:00Z"))
	assert.True(t, IsValid(DATETIME, "2018-01-01T00:00:00+00:00"))
	assert.False(t, IsValid(DATETIME, "2018-01-01T00:00:00"), "missing timezone")
	assert.False(t, IsValid(DATETIME, "not-a-date"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValid(EMAIL, "a@b.c"))
	assert.False(t, IsValid(EMAIL, "not-an-email"))
}

func TestIsValidRDFType(t *testing.T) {
	assert.True(t, IsValid(RDFType, "BadgeClass"))
	assert.True(t, IsValid(RDFType, "Assertion"))
	assert.False(t, IsValid(RDFType, "SomeUnknownType"))
}

func TestIsValidUnknownTypeDefaultsFalse(t *testing.T) {
	assert.False(t, IsValid(ValueType("NOT_A_TYPE"), "anything"))
}

func TestParseDatetime(t *testing.T) {
	ts, err := ParseDatetime("2018-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 2018, ts.Year())

	_, err = ParseDatetime("not-a-date")
	assert.Error(t, err)
}

func TestIsHashedIdentityHash(t *testing.T) {
	assert.True(t, IsHashedIdentityHash("md5$"+repeat("a", 32)))
	assert.True(t, IsHashedIdentityHash("sha256$"+repeat("a", 64)))
	assert.False(t, IsHashedIdentityHash("a@b.c"))
	assert.False(t, IsHashedIdentityHash("md5$tooshort"))
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s[0])
	}
	return string(out)
}
