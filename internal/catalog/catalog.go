// Package catalog неизменяемая таблица инвестиционных планов. Каталог загружается один раз при старте и
// передается в сервисы по ссылке.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fsdevblog/groph-wallet/internal/domain"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// MaxNameLength ограничение колонки deposits.plan; с ним PLAN-<NAME>-<ULID> укладывается в 100 символов.
const MaxNameLength = 64

var ErrInvalidPlan = errors.New("invalid plan definition")

// Plan определение плана. ReturnRate - доля дохода за весь срок Duration (0.10 = 10%).
type Plan struct {
	Name       string
	PriceMin   decimal.Decimal
	PriceMax   *decimal.Decimal
	ReturnRate decimal.Decimal
	Duration   time.Duration
}

// ExpectedReturn сумма к получению после погашения: amount + amount*ReturnRate.
func (p Plan) ExpectedReturn(amount decimal.Decimal) decimal.Decimal {
	return amount.Add(amount.Mul(p.ReturnRate))
}

// IsMatured true если с момента покупки прошел весь срок плана.
func (p Plan) IsMatured(purchasedAt, now time.Time) bool {
	return !now.Before(purchasedAt.Add(p.Duration))
}

// Contains проверяет, что сумма лежит в ценовом диапазоне плана.
func (p Plan) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(p.PriceMin) {
		return false
	}
	return p.PriceMax == nil || !amount.GreaterThan(*p.PriceMax)
}

func (p Plan) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPlan)
	}
	if n := len(Normalize(p.Name)); n > MaxNameLength {
		return fmt.Errorf("%w: name is %d chars long, max %d", ErrInvalidPlan, n, MaxNameLength)
	}
	if !p.PriceMin.IsPositive() {
		return fmt.Errorf("%w: %s: price min must be > 0", ErrInvalidPlan, p.Name)
	}
	if p.PriceMax != nil && p.PriceMax.LessThan(p.PriceMin) {
		return fmt.Errorf("%w: %s: price max must be >= price min", ErrInvalidPlan, p.Name)
	}
	if p.ReturnRate.IsNegative() {
		return fmt.Errorf("%w: %s: return rate must be >= 0", ErrInvalidPlan, p.Name)
	}
	// начисление почасовое, план короче часа не имеет смысла.
	if p.Duration < time.Hour {
		return fmt.Errorf("%w: %s: duration must be at least 1h", ErrInvalidPlan, p.Name)
	}
	return nil
}

// Summary описание плана для клиентов.
type Summary struct {
	Name         string
	ReturnRate   decimal.Decimal
	Duration     time.Duration
	DurationDays int64
	MinAmount    decimal.Decimal
	MaxAmount    *decimal.Decimal
}

type Catalog struct {
	plans map[string]Plan
	names []string
}

// New проверяет определения и строит каталог. Имена нормализуются, дубликаты запрещены.
func New(plans []Plan) (*Catalog, error) {
	c := &Catalog{plans: make(map[string]Plan, len(plans))}
	for _, p := range plans {
		if err := p.validate(); err != nil {
			return nil, err
		}
		p.Name = Normalize(p.Name)
		if _, ok := c.plans[p.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate plan %s", ErrInvalidPlan, p.Name)
		}
		c.plans[p.Name] = p
		c.names = append(c.names, p.Name)
	}
	// упорядочиваем по минимальной цене, чтобы List был стабильным.
	sort.SliceStable(c.names, func(i, j int) bool {
		return c.plans[c.names[i]].PriceMin.LessThan(c.plans[c.names[j]].PriceMin)
	})
	return c, nil
}

func MustNew(plans []Plan) *Catalog {
	c, err := New(plans)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize приводит имя плана к ключу каталога.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Lookup ищет план без учета регистра. Возвращает *domain.UnknownPlanError.
func (c *Catalog) Lookup(name string) (Plan, error) {
	p, ok := c.plans[Normalize(name)]
	if !ok {
		return Plan{}, &domain.UnknownPlanError{Name: name, Available: c.Names()}
	}
	return p, nil
}

// Has сообщает, известен ли каталогу нормализованный ключ.
func (c *Catalog) Has(name string) bool {
	_, ok := c.plans[Normalize(name)]
	return ok
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// ValidateAmount проверяет сумму против ценового диапазона плана.
func (c *Catalog) ValidateAmount(name string, amount decimal.Decimal) error {
	p, err := c.Lookup(name)
	if err != nil {
		return err
	}
	if !p.Contains(amount) {
		return &domain.AmountOutOfRangeError{Plan: p.Name, Amount: amount, Min: p.PriceMin, Max: p.PriceMax}
	}
	return nil
}

// ResolveAmount возвращает сумму покупки: custom, если задана и лежит в диапазоне, иначе минимальную цену.
func (c *Catalog) ResolveAmount(p Plan, custom *domain.Money) (decimal.Decimal, error) {
	if custom == nil {
		return p.PriceMin, nil
	}
	amount := custom.Decimal()
	if !p.Contains(amount) {
		return decimal.Zero, &domain.AmountOutOfRangeError{Plan: p.Name, Amount: amount, Min: p.PriceMin, Max: p.PriceMax}
	}
	return amount, nil
}

func (c *Catalog) List() []Summary {
	res := make([]Summary, 0, len(c.names))
	for _, name := range c.names {
		p := c.plans[name]
		res = append(res, Summary{
			Name:         p.Name,
			ReturnRate:   p.ReturnRate,
			Duration:     p.Duration,
			DurationDays: int64(math.Ceil(float64(p.Duration) / float64(day))),
			MinAmount:    p.PriceMin,
			MaxAmount:    p.PriceMax,
		})
	}
	return res
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Default встроенный набор планов.
func Default() *Catalog {
	return MustNew([]Plan{
		{
			Name:       "BASIC",
			PriceMin:   decimal.NewFromInt(100),
			PriceMax:   price(999),
			ReturnRate: decimal.RequireFromString("0.10"),
			Duration:   30 * day,
		},
		{
			Name:       "SILVER",
			PriceMin:   decimal.NewFromInt(1000),
			PriceMax:   price(4999),
			ReturnRate: decimal.RequireFromString("0.15"),
			Duration:   30 * day,
		},
		{
			Name:       "GOLD",
			PriceMin:   decimal.NewFromInt(5000),
			PriceMax:   price(19999),
			ReturnRate: decimal.RequireFromString("0.25"),
			Duration:   60 * day,
		},
		{
			Name:       "PLATINUM",
			PriceMin:   decimal.NewFromInt(20000),
			ReturnRate: decimal.RequireFromString("0.40"),
			Duration:   90 * day,
		},
	})
}
