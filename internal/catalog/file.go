package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Plans []filePlan `yaml:"plans"`
}

type filePlan struct {
	Name       string `yaml:"name"`
	PriceMin   string `yaml:"price_min"`
	PriceMax   string `yaml:"price_max"`
	ReturnRate string `yaml:"return_rate"`
	Duration   string `yaml:"duration"`
}

// LoadFile читает каталог из YAML файла вида:
//
//	plans:
//	  - name: basic
//	    price_min: "100"
//	    price_max: "999"
//	    return_rate: "0.10"
//	    duration: 720h
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plans file: %s", err.Error())
	}
	return Parse(data)
}

// Parse строит каталог из YAML содержимого.
func Parse(data []byte) (*Catalog, error) {
	var conf fileConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("parsing plans file: %s", err.Error())
	}
	if len(conf.Plans) == 0 {
		return nil, fmt.Errorf("%w: plans file has no plans", ErrInvalidPlan)
	}

	plans := make([]Plan, len(conf.Plans))
	for i, fp := range conf.Plans {
		p, err := fp.toPlan()
		if err != nil {
			return nil, err
		}
		plans[i] = p
	}
	return New(plans)
}

func (fp filePlan) toPlan() (Plan, error) {
	priceMin, err := decimal.NewFromString(fp.PriceMin)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %s: price_min: %s", ErrInvalidPlan, fp.Name, err.Error())
	}
	rate, err := decimal.NewFromString(fp.ReturnRate)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %s: return_rate: %s", ErrInvalidPlan, fp.Name, err.Error())
	}
	duration, err := time.ParseDuration(fp.Duration)
	if err != nil {
		return Plan{}, fmt.Errorf("%w: %s: duration: %s", ErrInvalidPlan, fp.Name, err.Error())
	}
	p := Plan{
		Name:       fp.Name,
		PriceMin:   priceMin,
		ReturnRate: rate,
		Duration:   duration,
	}
	if fp.PriceMax != "" {
		priceMax, maxErr := decimal.NewFromString(fp.PriceMax)
		if maxErr != nil {
			return Plan{}, fmt.Errorf("%w: %s: price_max: %s", ErrInvalidPlan, fp.Name, maxErr.Error())
		}
		p.PriceMax = &priceMax
	}
	return p, nil
}
