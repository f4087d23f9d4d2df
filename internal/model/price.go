package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Price is the valor column. JSON bodies may carry it as a number or as a
// numeric string.
type Price float64

func ParsePrice(raw string) (Price, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid valor %q", raw)
	}
	return Price(v), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	v, err := ParsePrice(raw)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p *Price) Float64() *float64 {
	if p == nil {
		return nil
	}
	v := float64(*p)
	return &v
}
