package validation

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type measurement struct {
	Email    string   `json:"user_email" binding:"required"`
	Date     string   `json:"date" binding:"required,datetime=2006-01-02"`
	Minutes  *float64 `json:"duration_min" binding:"required,gt=0"`
	BodyFat  *float64 `json:"body_fat_pct" binding:"omitempty,gte=0,lte=100"`
	Ignored  string   `json:"-"`
	Untagged string
}

type listQuery struct {
	Email string `form:"user_email" binding:"required"`
	Limit int    `form:"limit,default=50" binding:"min=1,max=500"`
}

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonContext(body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func queryContext(query string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func fieldsOf(t *testing.T, err error) map[string]FieldError {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*Error)
	require.True(t, ok, "unexpected error type %T", err)
	out := make(map[string]FieldError, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f
	}
	return out
}

func TestBindJSON_Valid(t *testing.T) {
	var m measurement
	err := BindJSON(jsonContext(`{"user_email":"a@x.com","date":"2024-06-01","duration_min":30,"body_fat_pct":0}`), &m)
	require.NoError(t, err)
	assert.Equal(t, 30.0, *m.Minutes)
	assert.Equal(t, 0.0, *m.BodyFat)
}

func TestBindJSON_ConstraintViolations(t *testing.T) {
	var m measurement
	fields := fieldsOf(t, BindJSON(jsonContext(`{"date":"2024-13-01","duration_min":0,"body_fat_pct":101}`), &m))

	require.Len(t, fields, 4)
	assert.Equal(t, "required", fields["user_email"].Constraint)
	assert.Equal(t, "datetime", fields["date"].Constraint)
	assert.Equal(t, "gt", fields["duration_min"].Constraint)
	assert.Equal(t, "0", fields["duration_min"].Param)
	assert.Equal(t, "must be greater than 0", fields["duration_min"].Message)
	assert.Equal(t, "lte", fields["body_fat_pct"].Constraint)
}

func TestBindJSON_DecodeErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		field      string
		constraint string
	}{
		{name: "malformed", body: `{"user_email":`, field: "body", constraint: "json"},
		{name: "syntax", body: `{nope}`, field: "body", constraint: "json"},
		{name: "empty", body: ``, field: "body", constraint: "required"},
		{name: "wrong type", body: `{"duration_min":"long"}`, field: "duration_min", constraint: "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m measurement
			fields := fieldsOf(t, BindJSON(jsonContext(tt.body), &m))
			require.Contains(t, fields, tt.field)
			assert.Equal(t, tt.constraint, fields[tt.field].Constraint)
		})
	}
}

func TestBindQuery(t *testing.T) {
	var q listQuery
	require.NoError(t, BindQuery(queryContext("user_email=a@x.com"), &q))
	assert.Equal(t, 50, q.Limit)

	q = listQuery{}
	fields := fieldsOf(t, BindQuery(queryContext("user_email=a@x.com&limit=501"), &q))
	assert.Equal(t, "max", fields["limit"].Constraint)
	assert.Equal(t, "500", fields["limit"].Param)

	q = listQuery{}
	fields = fieldsOf(t, BindQuery(queryContext("limit=0"), &q))
	assert.Contains(t, fields, "user_email")
	assert.Contains(t, fields, "limit")

	q = listQuery{}
	fields = fieldsOf(t, BindQuery(queryContext("user_email=a@x.com&limit=ten"), &q))
	require.Contains(t, fields, "limit")
	assert.Equal(t, "type", fields["limit"].Constraint)
	assert.Equal(t, `invalid number "ten"`, fields["limit"].Message)
}

func TestQueryKeyWithValue(t *testing.T) {
	values := url.Values{"user_email": {"abc"}, "days": {"abc"}, "limit": {"x"}}
	assert.Equal(t, "days", queryKeyWithValue(values, "abc"))
	assert.Equal(t, "limit", queryKeyWithValue(values, "x"))
	assert.Equal(t, "query", queryKeyWithValue(values, "missing"))
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Fields: []FieldError{
		{Field: "a", Message: "is required"},
		{Field: "b", Message: "must be greater than 0"},
	}}
	assert.Equal(t, "validation failed: a: is required; b: must be greater than 0", err.Error())
}
