// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoclib/dijkstra"
	"github.com/katalvlaran/aoclib/matrix"
	"github.com/katalvlaran/aoclib/point"
)

// pathCmd prints the lowest total risk from the top-left to the bottom-right
// of a digit grid, where entering a cell costs its digit.
func (a *app) pathCmd() *cobra.Command {
	var tile int
	cmd := &cobra.Command{
		Use:   "path <puzzle-id|file>",
		Short: "Lowest total risk across a digit grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tile < 1 {
				return fmt.Errorf("--tile must be at least 1, got %d", tile)
			}
			text, err := a.load(args[0])
			if err != nil {
				return err
			}
			m, err := matrix.FromDigitLines(text)
			if err != nil {
				return err
			}
			if tile > 1 {
				m = tileRisk(m, tile)
			}

			started := time.Now()
			end := point.New(m.Width()-1, m.Height()-1)
			res, err := m.WeightedShortestPath(point.New(0, 0), end,
				func(_, to int) (int, bool) { return to, true },
				dijkstra.WithContext(cmd.Context()),
				dijkstra.WithMaxSettled(a.v.GetInt(keyMaxSettled)),
			)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"width":   m.Width(),
				"height":  m.Height(),
				"settled": res.Settled,
				"elapsed": time.Since(started),
			}).Info("search complete")

			fmt.Fprintf(cmd.OutOrStdout(), "lowest total risk: %d\n", res.Distance)
			return nil
		},
	}
	cmd.Flags().IntVar(&tile, "tile", 1, "repeat the grid this many times in each direction, raising risk per tile")
	return cmd
}

// tileRisk repeats m n times across and down. Each tile step adds one to
// every digit, wrapping from 9 back to 1.
func tileRisk(m *matrix.Matrix[int], n int) *matrix.Matrix[int] {
	w, h := m.Width(), m.Height()
	return matrix.Must(matrix.FromFunc(w*n, h*n, func(p point.Point) int {
		v := m.AtXY(p.X%w, p.Y%h) + p.X/w + p.Y/h
		return (v-1)%9 + 1
	}))
}

// regionsCmd prints the number of equal-rune regions and the size of each.
func (a *app) regionsCmd() *cobra.Command {
	var diagonal bool
	cmd := &cobra.Command{
		Use:   "regions <puzzle-id|file>",
		Short: "Partition a character grid into regions of equal runes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.load(args[0])
			if err != nil {
				return err
			}
			m, err := matrix.FromStringLines(text)
			if err != nil {
				return err
			}
			conn := matrix.Conn4
			if diagonal {
				conn = matrix.Conn8
			}
			regions := m.Regions(conn, func(x, y rune) bool { return x == y })
			a.log.WithFields(logrus.Fields{"regions": len(regions), "cells": m.Len()}).Info("partitioned grid")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "regions: %d\n", len(regions))
			for _, r := range regions {
				fmt.Fprintf(out, "%c: %d\n", m.At(r[0]), len(r))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "treat diagonal neighbors as connected")
	return cmd
}

// showCmd echoes the parsed grid with its dimensions.
func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <puzzle-id|file>",
		Short: "Print a parsed grid and its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.load(args[0])
			if err != nil {
				return err
			}
			m, err := matrix.FromStringLines(text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size: %dx%d\n", m.Width(), m.Height())
			fmt.Fprint(out, m)
			return nil
		},
	}
}
