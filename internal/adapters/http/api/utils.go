package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/awards/internal/domain/types"
)

// eventIDFrom returns the {id} path value.
func eventIDFrom(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		return "", errors.New("missing event id")
	}
	return id, nil
}

// queryFrom builds an evaluation query from URL parameters. Program and sort
// names are validated by the service.
func queryFrom(r *http.Request) (types.EvaluationQuery, error) {
	v := r.URL.Query()
	q := types.EvaluationQuery{
		Program: v.Get("program"),
		Sort:    v.Get("sort"),
		Grade:   v.Get("grade"),
		Query:   v.Get("q"),
	}
	var err error
	if q.GradeSplit, err = parseBool(v.Get("grade_split"), "grade_split"); err != nil {
		return types.EvaluationQuery{}, err
	}
	if q.EligibleOnly, err = parseBool(v.Get("eligible_only"), "eligible_only"); err != nil {
		return types.EvaluationQuery{}, err
	}
	return q, nil
}

// parseBool treats an empty value as false.
func parseBool(s, name string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", name, s)
	}
	return b, nil
}
