package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kevin-chtw/tw_riichi/riichi"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/spf13/cobra"
)

type handFlags struct {
	hand  string
	melds []string
}

func (f *handFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.hand, "hand", "", "concealed tiles, e.g. 123m456m789p234s99s")
	cmd.Flags().StringSliceVar(&f.melds, "meld", nil, "open meld with source seat (555z@2), concealed quad without seat (1111m)")
	_ = cmd.MarkFlagRequired("hand")
}

func (f *handFlags) parse() ([]riichi.Tile, []riichi.Meld, error) {
	tiles, err := riichi.ParseTiles(f.hand)
	if err != nil {
		return nil, nil, err
	}
	melds := make([]riichi.Meld, 0, len(f.melds))
	for _, s := range f.melds {
		m, err := riichi.ParseMeld(s)
		if err != nil {
			return nil, nil, err
		}
		melds = append(melds, m)
	}
	return tiles, melds, nil
}

type scoreFlags struct {
	handFlags
	win   string
	round string
	dora  string
	ctx   riichi.Context
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "计算和牌的役, 符, 番和点数",
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.run(cmd.OutOrStdout())
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&f.win, "win", "", "winning tile, must also be in --hand")
	cmd.Flags().StringVar(&f.round, "round", "1z", "round wind")
	cmd.Flags().StringVar(&f.dora, "dora", "", "dora indicators")
	cmd.Flags().Int32Var(&f.ctx.Seat, "seat", 0, "winner seat")
	cmd.Flags().Int32Var(&f.ctx.DealerSeat, "dealer", 0, "dealer seat")
	cmd.Flags().BoolVar(&f.ctx.Tsumo, "tsumo", false, "self draw")
	cmd.Flags().BoolVar(&f.ctx.Riichi, "riichi", false, "riichi")
	cmd.Flags().BoolVar(&f.ctx.DoubleRiichi, "double-riichi", false, "double riichi")
	cmd.Flags().BoolVar(&f.ctx.Ippatsu, "ippatsu", false, "one shot")
	cmd.Flags().BoolVar(&f.ctx.Haitei, "haitei", false, "last tile of the wall")
	cmd.Flags().BoolVar(&f.ctx.Houtei, "houtei", false, "last discard")
	cmd.Flags().BoolVar(&f.ctx.Rinshan, "rinshan", false, "draw after quad")
	cmd.Flags().BoolVar(&f.ctx.Tenhou, "tenhou", false, "dealer first draw")
	cmd.Flags().BoolVar(&f.ctx.Chiihou, "chiihou", false, "non-dealer first draw")
	_ = cmd.MarkFlagRequired("win")
	return cmd
}

func (f *scoreFlags) run(out io.Writer) error {
	tiles, melds, err := f.parse()
	if err != nil {
		return err
	}
	win, err := riichi.ParseTile(f.win)
	if err != nil {
		return err
	}
	if f.ctx.RoundWind, err = riichi.ParseTile(f.round); err != nil {
		return err
	}
	dora, err := riichi.ParseTiles(f.dora)
	if err != nil {
		return err
	}

	solver := riichi.NewSolver(cfg.RuleOptions())
	v, err := solver.Solve(riichi.Hand{Tiles: tiles, Melds: melds, WinTile: win}, f.ctx, dora)
	if err != nil {
		return err
	}
	if cfg.Output.Format == "json" {
		st, err := riichi.StructFromAny(v.ToAny())
		if err != nil {
			return err
		}
		data, err := utils.ToJSON(st, true)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return writeVerdict(out, v)
}

func writeVerdict(out io.Writer, v *riichi.Verdict) error {
	if !v.CanWin {
		_, err := fmt.Fprintln(out, "no win")
		return err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "yaku:  %s\n", strings.Join(v.YakuNames(), ", "))
	fmt.Fprintf(&sb, "han:   %d\n", v.Han)
	fmt.Fprintf(&sb, "fu:    %d\n", v.Fu)
	if v.Title != "" {
		fmt.Fprintf(&sb, "title: %s\n", v.Title)
	}
	fmt.Fprintf(&sb, "score: %d (%s)\n", v.Score, v.PayText)
	for _, g := range v.Groups {
		fmt.Fprintf(&sb, "  %s\n", g)
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

func newWaitsCmd() *cobra.Command {
	f := &handFlags{}
	cmd := &cobra.Command{
		Use:   "waits",
		Short: "列出听牌张",
		RunE: func(cmd *cobra.Command, args []string) error {
			tiles, melds, err := f.parse()
			if err != nil {
				return err
			}
			waits, err := riichi.Waits(tiles, melds)
			if err != nil {
				return err
			}
			if len(waits) == 0 {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "not tenpai")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), riichi.TilesName(waits))
			return err
		},
	}
	f.bind(cmd)
	return cmd
}
