package dashboard

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/de-tools/campaign-dash/pkg/models/domain"
	"github.com/de-tools/campaign-dash/pkg/services/dashboard"
)

// Query parameter names shared by the dashboard and chart endpoints.
const (
	ParamAgeMin    = "age_min"
	ParamAgeMax    = "age_max"
	ParamIncomeMin = "income_min"
	ParamIncomeMax = "income_max"
	ParamEducation = "education"
	ParamMarital   = "marital"
	ParamLegend    = "legend"
)

// BadParamError reports a query parameter that could not be parsed.
type BadParamError struct {
	Param string
	Value string
}

func (e *BadParamError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.Value, e.Param)
}

// ParseCriteria overlays query parameters on the dataset defaults.
// A category parameter that is present but empty selects nothing.
func ParseCriteria(q url.Values, defaults domain.FilterCriteria) (domain.FilterCriteria, error) {
	c := defaults

	var err error
	if c.AgeMin, err = intParam(q, ParamAgeMin, c.AgeMin); err != nil {
		return c, err
	}
	if c.AgeMax, err = intParam(q, ParamAgeMax, c.AgeMax); err != nil {
		return c, err
	}
	if c.IncomeMin, err = floatParam(q, ParamIncomeMin, c.IncomeMin); err != nil {
		return c, err
	}
	if c.IncomeMax, err = floatParam(q, ParamIncomeMax, c.IncomeMax); err != nil {
		return c, err
	}

	if values, ok := q[ParamEducation]; ok {
		c.AllowedEducation = setParam(values)
	}
	if values, ok := q[ParamMarital]; ok {
		c.AllowedMarital = setParam(values)
	}
	return c, nil
}

func ParseViewOptions(q url.Values) (dashboard.ViewOptions, error) {
	opts := dashboard.DefaultViewOptions()
	raw := q.Get(ParamLegend)
	if raw == "" {
		return opts, nil
	}
	show, err := strconv.ParseBool(raw)
	if err != nil {
		return opts, &BadParamError{Param: ParamLegend, Value: raw}
	}
	opts.ShowLegend = show
	return opts, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, &BadParamError{Param: name, Value: raw}
	}
	return v, nil
}

func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def, &BadParamError{Param: name, Value: raw}
	}
	return v, nil
}

// setParam accepts both repeated parameters and comma separated lists.
func setParam(values []string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				set[item] = struct{}{}
			}
		}
	}
	return set
}
