package distrib

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"squirrel-noise/pkg/squirrel"
)

// supported (https://pkg.go.dev/gonum.org/v1/gonum/stat/distuv)
// * Bernoulli(p)
// * Exponential(rate)
// * Laplace(mu, scale)
// * Normal(mu, sigma)
// * Uniform(min, max)

const number = `([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`

var (
	reOne = regexp.MustCompile(`^([a-z]+)\(\s*` + number + `\s*\)$`)
	reTwo = regexp.MustCompile(`^([a-z]+)\(\s*` + number + `\s*,\s*` + number + `\s*\)$`)
)

// Parse matches a string like "normal(0, 1)" to a distuv distribution drawing
// from src. A nil src uses a fresh squirrel stream with seed 0, so results
// stay reproducible. The empty string parses to Never.
func Parse(s string, src rand.Source) (distuv.Rander, error) {
	if src == nil {
		stream := squirrel.New(0)
		src = &stream
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Never{}, nil
	}

	name, args, err := split(s)
	if err != nil {
		return nil, err
	}

	switch name {
	case "bernoulli":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		p := args[0]
		if p < 0 || p > 1 {
			return nil, errors.Errorf("invalid probability %v: must be in [0, 1]", p)
		}
		return &distuv.Bernoulli{P: p, Src: src}, nil

	case "exponential":
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		if !(args[0] > 0) {
			return nil, errors.Errorf("invalid rate %v: must be larger than 0", args[0])
		}
		return &distuv.Exponential{Rate: args[0], Src: src}, nil

	case "laplace":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		if !(args[1] > 0) {
			return nil, errors.Errorf("invalid scale %v: must be larger than 0", args[1])
		}
		return &distuv.Laplace{Mu: args[0], Scale: args[1], Src: src}, nil

	case "normal":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		if args[1] < 0 {
			return nil, errors.Errorf("invalid sigma %v: must be positive", args[1])
		}
		return &distuv.Normal{Mu: args[0], Sigma: args[1], Src: src}, nil

	case "uniform":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		if !(args[0] < args[1]) {
			return nil, errors.New("invalid parameters: min should be smaller than max")
		}
		return &distuv.Uniform{Min: args[0], Max: args[1], Src: src}, nil

	default:
		return nil, errors.Errorf("unknown distribution: %s", name)
	}
}

// split parses "name(a)" or "name(a, b)" into its name and numeric arguments.
func split(s string) (name string, args []float64, err error) {
	var raw []string
	if m := reTwo.FindStringSubmatch(s); m != nil {
		name, raw = m[1], m[2:]
	} else if m := reOne.FindStringSubmatch(s); m != nil {
		name, raw = m[1], m[2:]
	} else {
		return "", nil, errors.Errorf("invalid format %q: expected name(:arg) or name(:arg, :arg)", s)
	}
	for _, r := range raw {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return "", nil, errors.Wrapf(err, "invalid argument in %q", s)
		}
		args = append(args, v)
	}
	return name, args, nil
}

func arity(name string, args []float64, n int) error {
	if len(args) != n {
		return errors.Errorf("%s takes %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// Never always returns 0.
type Never struct{}

func (Never) Rand() float64 { return 0 }

// CoinFlip is a boolean draw backed by a Bernoulli distribution.
type CoinFlip struct {
	dist distuv.Rander
}

// NewCoinFlip panics if p is outside [0, 1]. Every flip consumes one Uint64
// from src, including p == 0 and p == 1.
func NewCoinFlip(p float64, src rand.Source) CoinFlip {
	if src == nil {
		stream := squirrel.New(0)
		src = &stream
	}
	if !(0 <= p && p <= 1) {
		panic("Bernoulli probability must be in [0, 1]")
	}
	return CoinFlip{distuv.Bernoulli{P: p, Src: src}}
}

// Next flips the coin.
func (cf *CoinFlip) Next() bool {
	return cf.dist.Rand() == 1
}
