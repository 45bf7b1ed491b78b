// SPDX-License-Identifier: MIT
// Package: masseyramanujan/cmd/polydomain

package main

import (
	"context"
	"encoding/json"
	"math/big"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/domain"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/metrics"
)

const progressInterval = time.Second

// record is one JSON line of enumerate output.
type record struct {
	A      []int64      `json:"a"`
	B      []int64      `json:"b"`
	Facts  domain.Facts `json:"facts"`
	ATerms []*big.Int   `json:"a_terms,omitempty"`
	BTerms []*big.Int   `json:"b_terms,omitempty"`
}

type enumerateFlags struct {
	config      string
	primary     string
	limit       int64
	terms       int
	start       int64
	metricsAddr string
}

func newEnumerateCmd(a *app) *cobra.Command {
	fl := &enumerateFlags{}
	cmd := &cobra.Command{
		Use:   "enumerate",
		Short: "Stream accepted candidates as JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runEnumerate(cmd, fl)
		},
	}
	cmd.Flags().StringVarP(&fl.config, "config", "c", "", "domain config file (.yaml, .yml, .toml)")
	cmd.Flags().StringVar(&fl.primary, "primary", "", "outer-loop family (a|b), overrides the config")
	cmd.Flags().Int64Var(&fl.limit, "limit", 0, "stop after N candidates (0 = no limit), overrides the config")
	cmd.Flags().IntVar(&fl.terms, "terms", 0, "emit the first N terms of a(n) and b(n), overrides the config")
	cmd.Flags().Int64Var(&fl.start, "start", 1, "first sequence index, overrides the config")
	cmd.Flags().StringVar(&fl.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (a *app) runEnumerate(cmd *cobra.Command, fl *enumerateFlags) error {
	ctx := cmd.Context()
	log := a.log.With().Str("run_id", uuid.NewString()).Logger()
	a.log = log

	var (
		opts []domain.Option
		rec  *metrics.Recorder
	)
	if fl.metricsAddr != "" {
		rec = metrics.NewRecorder()
		opts = append(opts, domain.WithObserver(rec))
	}

	f, e, err := a.loadDomain(fl.config, opts...)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("primary") {
		f.Primary = fl.primary
	}
	if flags.Changed("limit") {
		f.Limit = fl.limit
	}
	if flags.Changed("terms") {
		f.Terms = fl.terms
	}
	if flags.Changed("start") {
		f.Start = fl.start
	}
	if err := f.Validate(); err != nil {
		return err
	}
	primary, err := f.PrimaryFamily()
	if err != nil {
		return err
	}

	if rec != nil {
		rec.SetDomainSize(e.Sizes())
		addr, stop, err := serveMetrics(fl.metricsAddr, rec.Handler())
		if err != nil {
			return err
		}
		defer stop()
		log.Info().Str("addr", addr).Msg("serving metrics")
	}

	seq, err := e.IterateContext(ctx, primary)
	if err != nil {
		return err
	}

	log.Info().
		Str("family", e.Family().Name()).
		Str("primary", string(primary)).
		Int64("total", e.Sizes().Total).
		Int64("limit", f.Limit).
		Msg("enumeration started")

	began := time.Now()
	progress := rate.Sometimes{Interval: progressInterval}
	enc := json.NewEncoder(cmd.OutOrStdout())
	var emitted int64
	for c := range seq {
		r := record{A: c.A, B: c.B, Facts: e.Facts(c)}
		if f.Terms > 0 {
			an, bn := e.BigSequences(c, f.Terms, f.Start)
			r.ATerms, r.BTerms = slices.Collect(an), slices.Collect(bn)
		}
		if err := enc.Encode(r); err != nil {
			return err
		}
		emitted++
		progress.Do(func() {
			log.Info().Int64("emitted", emitted).Stringer("candidate", c).Msg("progress")
		})
		if f.Limit > 0 && emitted >= f.Limit {
			break
		}
	}

	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Int64("emitted", emitted).Dur("elapsed", time.Since(began)).Msg("enumeration interrupted")

		return err
	}
	log.Info().Int64("emitted", emitted).Dur("elapsed", time.Since(began)).Msg("enumeration finished")

	return nil
}

// serveMetrics starts an HTTP server for h under /metrics on addr. It returns
// the bound address, which differs from addr when addr asks for port 0.
func serveMetrics(addr string, h http.Handler) (string, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() { _ = srv.Serve(ln) }()

	return ln.Addr().String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
