package view

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/Nawaf-Almansour/prep-manger/internal/apiclient"
	"github.com/Nawaf-Almansour/prep-manger/internal/validation"
)

const maxUploadBytes = 5 << 20

var rowKey = regexp.MustCompile(`^([A-Za-z]+)\[(\d+)\]\.([A-Za-z]+)$`)

// Form reads submitted values and collects parse errors keyed like
// validation.Errors so both can be shown next to the same inputs.
type Form struct {
	c      *fiber.Ctx
	values url.Values
	Errors validation.Errors
}

func NewForm(c *fiber.Ctx) *Form {
	return &Form{c: c, values: formValues(c), Errors: validation.Errors{}}
}

func formValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	if mf, err := c.MultipartForm(); err == nil {
		for k, vs := range mf.Value {
			values[k] = append(values[k], vs...)
		}
		return values
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		values.Add(string(k), string(v))
	})
	return values
}

// Raw returns the value as submitted.
func (f *Form) Raw(key string) string {
	return f.values.Get(key)
}

// String returns the trimmed value.
func (f *Form) String(key string) string {
	return strings.TrimSpace(f.values.Get(key))
}

func (f *Form) Bool(key string) bool {
	switch strings.ToLower(f.String(key)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// Float parses a required number. Blank, malformed or non-finite input
// records an error.
func (f *Form) Float(key string) float64 {
	return f.ParseFloat(key, f.String(key))
}

// OptionalFloat returns nil for blank input.
func (f *Form) OptionalFloat(key string) *float64 {
	if f.String(key) == "" {
		return nil
	}
	n := f.Float(key)
	return &n
}

func (f *Form) Int(key string) int {
	n, err := strconv.Atoi(f.String(key))
	if err != nil {
		f.Errors.Add(key, "Expected a whole number")
		return 0
	}
	return n
}

// File returns the uploaded file, or nil when none was sent.
func (f *Form) File(key string) (*apiclient.File, error) {
	fh, err := f.c.FormFile(key)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read upload %s: %w", key, err)
	}
	if fh.Size == 0 {
		return nil, nil
	}
	if fh.Size > maxUploadBytes {
		f.Errors.Add(key, "Image must be 5MB or smaller")
		return nil, nil
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", key, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload %s: %w", key, err)
	}
	return &apiclient.File{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// Rows collects fields named prefix[i].field into one map per index,
// ordered by index.
func (f *Form) Rows(prefix string) []map[string]string {
	byIndex := map[int]map[string]string{}
	for key, vs := range f.values {
		m := rowKey.FindStringSubmatch(key)
		if m == nil || m[1] != prefix || len(vs) == 0 {
			continue
		}
		i, _ := strconv.Atoi(m[2])
		if byIndex[i] == nil {
			byIndex[i] = map[string]string{}
		}
		byIndex[i][m[3]] = strings.TrimSpace(vs[0])
	}

	indexes := make([]int, 0, len(byIndex))
	for i := range byIndex {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	rows := make([]map[string]string, 0, len(indexes))
	for _, i := range indexes {
		rows = append(rows, byIndex[i])
	}
	return rows
}

// ParseFloat is the row-level counterpart of Form.Float.
func (f *Form) ParseFloat(key, value string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		f.Errors.Add(key, "Expected a number")
		return 0
	}
	return n
}

// Invalid merges parse errors with the rule failures of s. It returns nil
// when the submission can be handed to a command.
func (f *Form) Invalid(v *validation.Validator, s any) validation.Errors {
	errs := validation.Errors{}.Merge(f.Errors)
	if err := v.Struct(s); err != nil {
		if fieldErrs, ok := validation.AsErrors(err); ok {
			errs = errs.Merge(fieldErrs)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Failure splits a use case error into what the form should show. fatal is
// non-nil for errors that must abort the request (401, unexpected failures
// are still shown inline).
func Failure(err error, fallback string) (message string, fields validation.Errors, fatal error) {
	if errs, ok := validation.AsErrors(err); ok {
		return "", errs, nil
	}
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return "", nil, err
	}
	return apiclient.Message(err, fallback), nil, nil
}
