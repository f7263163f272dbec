package ohm

import (
	"errors"
	"math"
)

var (
	ErrInvalidInputCount  = errors.New("exactly two non-zero values required")
	ErrInvalidCalculation = errors.New("invalid calculation: negative value under square root")
	ErrDivisionByZero     = errors.New("division by zero")
)

type Input struct {
	Resistance  float64 `json:"resistance_ohm"`
	Current     float64 `json:"current_a"`
	Voltage     float64 `json:"voltage_v"`
	Power       float64 `json:"power_w"`
	ThreePhase  bool    `json:"three_phase"`
	PowerFactor float64 `json:"power_factor"`
}

type Result struct {
	Resistance float64 `json:"resistance_ohm"`
	Current    float64 `json:"current_a"`
	Voltage    float64 `json:"voltage_v"`
	Power      float64 `json:"power_w"`
	ThreePhase bool    `json:"three_phase"`
	Notes      string  `json:"notes"`
}

// Which pair of quantities was supplied. The solver dispatches on this tag
// rather than re-checking field combinations in every branch.
type knownPair int

const (
	pairRV knownPair = iota
	pairRI
	pairRP
	pairVI
	pairVP
	pairIP
	pairInvalid
)

func classify(in Input) knownPair {
	hasR := in.Resistance > 0
	hasI := in.Current > 0
	hasV := in.Voltage > 0
	hasP := in.Power > 0

	n := 0
	for _, b := range []bool{hasR, hasI, hasV, hasP} {
		if b {
			n++
		}
	}
	if n != 2 {
		return pairInvalid
	}
	switch {
	case hasR && hasV:
		return pairRV
	case hasR && hasI:
		return pairRI
	case hasR && hasP:
		return pairRP
	case hasV && hasI:
		return pairVI
	case hasV && hasP:
		return pairVP
	default:
		return pairIP
	}
}

func div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, ErrInvalidCalculation
	}
	return math.Sqrt(x), nil
}

// Calculate fills in the two unknown quantities from the two supplied ones.
// Unknowns are passed as zero. Phase mode is an explicit input: in three-phase
// mode the voltage is line-to-line and the configured power factor scales the
// power terms; with PowerFactor unset it defaults to 1.0.
func Calculate(in Input) (Result, error) {
	pair := classify(in)
	if pair == pairInvalid {
		return Result{}, ErrInvalidInputCount
	}
	if in.PowerFactor <= 0 || in.PowerFactor > 1 {
		in.PowerFactor = 1.0
	}

	var err error
	if in.ThreePhase {
		in, err = solveThreePhase(in, pair)
	} else {
		in, err = solveSinglePhase(in, pair)
	}
	if err != nil {
		return Result{}, err
	}

	notes := "Single-phase/DC."
	if in.ThreePhase {
		notes = "Three-phase AC, line-to-line voltage."
	}
	return Result{
		Resistance: in.Resistance,
		Current:    in.Current,
		Voltage:    in.Voltage,
		Power:      in.Power,
		ThreePhase: in.ThreePhase,
		Notes:      notes,
	}, nil
}

func solveSinglePhase(in Input, pair knownPair) (Input, error) {
	var err error
	switch pair {
	case pairRV:
		if in.Current, err = div(in.Voltage, in.Resistance); err != nil {
			return in, err
		}
		in.Power = in.Voltage * in.Voltage / in.Resistance
	case pairRI:
		in.Voltage = in.Current * in.Resistance
		in.Power = in.Current * in.Current * in.Resistance
	case pairRP:
		if in.Voltage, err = sqrt(in.Power * in.Resistance); err != nil {
			return in, err
		}
		ratio, err := div(in.Power, in.Resistance)
		if err != nil {
			return in, err
		}
		if in.Current, err = sqrt(ratio); err != nil {
			return in, err
		}
	case pairVI:
		if in.Resistance, err = div(in.Voltage, in.Current); err != nil {
			return in, err
		}
		in.Power = in.Voltage * in.Current
	case pairVP:
		if in.Resistance, err = div(in.Voltage*in.Voltage, in.Power); err != nil {
			return in, err
		}
		if in.Current, err = div(in.Power, in.Voltage); err != nil {
			return in, err
		}
	case pairIP:
		if in.Resistance, err = div(in.Power, in.Current*in.Current); err != nil {
			return in, err
		}
		if in.Voltage, err = div(in.Power, in.Current); err != nil {
			return in, err
		}
	default:
		return in, ErrInvalidInputCount
	}
	return in, nil
}

func solveThreePhase(in Input, pair knownPair) (Input, error) {
	pf := in.PowerFactor
	var err error
	switch pair {
	case pairRV:
		vln := in.Voltage / math.Sqrt(3)
		if in.Current, err = div(vln, in.Resistance); err != nil {
			return in, err
		}
		in.Power = 3 * vln * vln / in.Resistance * pf
	case pairRI:
		vln := in.Current * in.Resistance
		in.Voltage = vln * math.Sqrt(3)
		in.Power = 3 * in.Current * in.Current * in.Resistance * pf
	case pairRP:
		radicand, err := div(in.Power*in.Resistance, 3*pf)
		if err != nil {
			return in, err
		}
		vln, err := sqrt(radicand)
		if err != nil {
			return in, err
		}
		in.Voltage = vln * math.Sqrt(3)
		if in.Current, err = div(vln, in.Resistance); err != nil {
			return in, err
		}
	case pairVI:
		vln := in.Voltage / math.Sqrt(3)
		if in.Resistance, err = div(vln, in.Current); err != nil {
			return in, err
		}
		in.Power = math.Sqrt(3) * in.Voltage * in.Current * pf
	case pairVP:
		if in.Current, err = div(in.Power, math.Sqrt(3)*in.Voltage*pf); err != nil {
			return in, err
		}
		vln := in.Voltage / math.Sqrt(3)
		if in.Resistance, err = div(3*vln*vln*pf, in.Power); err != nil {
			return in, err
		}
	case pairIP:
		if in.Voltage, err = div(in.Power, math.Sqrt(3)*in.Current*pf); err != nil {
			return in, err
		}
		vln := in.Voltage / math.Sqrt(3)
		if in.Resistance, err = div(vln, in.Current); err != nil {
			return in, err
		}
	default:
		return in, ErrInvalidInputCount
	}
	return in, nil
}
