package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/cwbudde/algo-tukey/dsp/core"
	"github.com/cwbudde/algo-tukey/dsp/filter/tukey"
	"github.com/cwbudde/algo-tukey/measure/residual"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// codec parses and formats one sample representation.
type codec[T any] struct {
	parse   func(string) (T, error)
	format  func(T) string
	toFloat func(T) float64
}

var (
	floatCodec = codec[float64]{
		parse:   func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
		format:  func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
		toFloat: func(v float64) float64 { return v },
	}
	decimalCodec = codec[decimal.Decimal]{
		parse:   decimal.NewFromString,
		format:  func(v decimal.Decimal) string { return v.String() },
		toFloat: func(v decimal.Decimal) float64 { return v.InexactFloat64() },
	}
	intCodec = codec[int64]{
		parse:   func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) },
		format:  func(v int64) string { return strconv.FormatInt(v, 10) },
		toFloat: func(v int64) float64 { return float64(v) },
	}
)

func run(cfg config, r io.Reader, w io.Writer, logger *slog.Logger) error {
	tokens, err := readTokens(r)
	if err != nil {
		return err
	}

	switch cfg.kind {
	case kindDecimal:
		return process(cfg, tokens, w, logger, decimalCodec, core.Decimal)
	case kindInt:
		return process(cfg, tokens, w, logger, intCodec, core.Int64)
	default:
		return process(cfg, tokens, w, logger, floatCodec, core.Float64)
	}
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}

	return tokens, errors.Wrap(sc.Err(), "read samples")
}

func process[T any](cfg config, tokens []string, w io.Writer, logger *slog.Logger, cd codec[T], c core.Capability[T]) error {
	raw := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := cd.parse(tok)
		if err != nil {
			return errors.Wrapf(err, "sample %d", i)
		}
		raw[i] = v
	}

	if len(raw) < tukey.Loss {
		logger.Warn("input too short to filter, passing through",
			"samples", len(raw), "min", tukey.Loss)
	}

	out, err := tukey.Filter(raw, c, cfg.k)
	if err != nil {
		return errors.Wrap(err, "tukey")
	}
	logger.Debug("filtered", "type", cfg.kind, "k", cfg.k, "in", len(raw), "out", len(out))

	bw := bufio.NewWriter(w)
	for _, v := range out {
		if _, err := fmt.Fprintln(bw, cd.format(v)); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write output")
	}

	if !cfg.stats || len(raw) < tukey.Loss {
		return nil
	}

	res, err := residual.Analyze(toFloat64(raw, cd), toFloat64(out, cd))
	if err != nil {
		return errors.Wrap(err, "residual")
	}
	logger.Info("residual",
		"replaced", res.Replaced,
		"length", res.Length,
		"ratio", res.ReplacedRatio,
		"mean", res.Mean,
		"stddev", res.StdDev,
		"rms", res.RMS,
		"peak", res.Peak)

	return nil
}

func toFloat64[T any](values []T, cd codec[T]) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = cd.toFloat(v)
	}
	return out
}
