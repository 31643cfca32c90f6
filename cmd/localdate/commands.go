package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clarityflowers/localdate/pkg/localdate"
)

type dayInfo struct {
	Date    localdate.Date  `json:"date"`
	Weekday string          `json:"weekday"`
	Week    string          `json:"week"`
	Month   localdate.Month `json:"month"`
	Quarter string          `json:"quarter"`
}

type weekInfo struct {
	Week   string           `json:"week"`
	Monday localdate.Date   `json:"monday"`
	Sunday localdate.Date   `json:"sunday"`
	Days   []localdate.Date `json:"days"`
}

type monthInfo struct {
	Month        localdate.Month `json:"month"`
	First        localdate.Date  `json:"first"`
	Last         localdate.Date  `json:"last"`
	NumberOfDays int             `json:"number_of_days"`
	FirstWeekday string          `json:"first_weekday"`
	Weeks        []string        `json:"weeks,omitempty"`
}

type quarterInfo struct {
	Quarter string         `json:"quarter"`
	Start   localdate.Date `json:"start"`
	End     localdate.Date `json:"end"`
	Days    int            `json:"days"`
}

type rangeInfo struct {
	From  localdate.Date   `json:"from"`
	To    localdate.Date   `json:"to"`
	Count int              `json:"count"`
	Days  []localdate.Date `json:"days"`
}

func todayCmd() *cobra.Command {
	var timezone string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's date with its week, month and quarter",
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := timezone
			if zone == "" {
				zone = cfg.Timezone
			}

			var d localdate.Date
			if zone == "" {
				d = localdate.Today()
			} else {
				var err error
				d, err = localdate.TodayIn(zone)
				if err != nil {
					return err
				}
			}

			return printDay(cmd.OutOrStdout(), d)
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone to resolve today in (default: system local)")

	return cmd
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day <YYYY-MM-DD>",
		Short: "Show a date with its weekday, week, month and quarter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := localdate.Parse(args[0])
			if err != nil {
				return err
			}
			return printDay(cmd.OutOrStdout(), d)
		},
	}
}

func weekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week [YYYY-MM-DD]",
		Short: "Show the Monday-based week containing a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := localdate.Today()
			if len(args) == 1 {
				var err error
				d, err = localdate.Parse(args[0])
				if err != nil {
					return err
				}
			}

			wk := localdate.WeekOf(d)
			out := cmd.OutOrStdout()

			if jsonMode() {
				return printJSON(out, weekInfo{
					Week:   wk.String(),
					Monday: wk.Monday(),
					Sunday: wk.Sunday(),
					Days:   wk.Days(),
				})
			}

			fmt.Fprintf(out, "Week:  %s\n", wk)
			for _, day := range wk.Days() {
				fmt.Fprintf(out, "  %s  %s\n", day, day.Weekday())
			}
			return nil
		},
	}
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month with its days and overlapping weeks (default: current)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := localdate.MonthOf(localdate.Today())
			if len(args) == 1 {
				var err error
				m, err = localdate.ParseMonth(args[0])
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()

			if jsonMode() {
				info := monthInfo{
					Month:        m,
					First:        m.First(),
					Last:         m.Last(),
					NumberOfDays: m.NumberOfDays(),
					FirstWeekday: m.FirstWeekday().String(),
				}
				for wk := range m.Weeks() {
					info.Weeks = append(info.Weeks, wk.String())
				}
				return printJSON(out, info)
			}

			fmt.Fprintf(out, "Month:      %s\n", m)
			fmt.Fprintf(out, "First day:  %s (%s)\n", m.First(), m.FirstWeekday())
			fmt.Fprintf(out, "Last day:   %s\n", m.Last())
			fmt.Fprintf(out, "Days:       %d\n", m.NumberOfDays())
			fmt.Fprintln(out, "Weeks:")
			for wk := range m.Weeks() {
				fmt.Fprintf(out, "  %s\n", wk)
			}
			return nil
		},
	}
}

func quarterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quarter [YYYY-MM-DD]",
		Short: "Show the quarter containing a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := localdate.Today()
			if len(args) == 1 {
				var err error
				d, err = localdate.Parse(args[0])
				if err != nil {
					return err
				}
			}

			q := localdate.QuarterOf(d)
			days := 0
			for range localdate.Days(q) {
				days++
			}

			out := cmd.OutOrStdout()

			if jsonMode() {
				return printJSON(out, quarterInfo{
					Quarter: q.String(),
					Start:   q.Start(),
					End:     q.End(),
					Days:    days,
				})
			}

			fmt.Fprintf(out, "Quarter:  %s\n", q)
			fmt.Fprintf(out, "Start:    %s\n", q.Start())
			fmt.Fprintf(out, "End:      %s\n", q.End())
			fmt.Fprintf(out, "Days:     %d\n", days)
			return nil
		},
	}
}

func rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <from> <to>",
		Short: "List every date from one date to another, inclusive",
		Long:  "List every date between two dates in canonical YYYY-MM-DD form. The walk runs backwards when the start date is after the end date.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := localdate.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid from date: %w", err)
			}
			to, err := localdate.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid to date: %w", err)
			}

			out := cmd.OutOrStdout()

			if jsonMode() {
				info := rangeInfo{From: from, To: to}
				for day := range from.Range(to) {
					info.Days = append(info.Days, day)
				}
				info.Count = len(info.Days)
				return printJSON(out, info)
			}

			count := 0
			for day := range from.Range(to) {
				fmt.Fprintf(out, "%s  %s\n", day, day.Weekday())
				count++
			}
			fmt.Fprintf(out, "\n%d day(s) from %s to %s\n", count, from, to)
			return nil
		},
	}
}

func yearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "year <YYYY>",
		Short: "List the twelve months of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}

			months := localdate.MonthsOfYear(year)
			out := cmd.OutOrStdout()

			if jsonMode() {
				infos := make([]monthInfo, 0, len(months))
				for _, m := range months {
					infos = append(infos, monthInfo{
						Month:        m,
						First:        m.First(),
						Last:         m.Last(),
						NumberOfDays: m.NumberOfDays(),
						FirstWeekday: m.FirstWeekday().String(),
					})
				}
				return printJSON(out, infos)
			}

			for _, m := range months {
				fmt.Fprintf(out, "%s  %2d days, starts on %s\n", m, m.NumberOfDays(), m.FirstWeekday())
			}
			return nil
		},
	}
}

func printDay(out io.Writer, d localdate.Date) error {
	if jsonMode() {
		return printJSON(out, dayInfo{
			Date:    d,
			Weekday: d.Weekday().String(),
			Week:    localdate.WeekOf(d).String(),
			Month:   localdate.MonthOf(d),
			Quarter: localdate.QuarterOf(d).String(),
		})
	}

	fmt.Fprintf(out, "Date:     %s\n", d)
	fmt.Fprintf(out, "Weekday:  %s\n", d.Weekday())
	fmt.Fprintf(out, "Week:     %s\n", localdate.WeekOf(d))
	fmt.Fprintf(out, "Month:    %s\n", localdate.MonthOf(d))
	fmt.Fprintf(out, "Quarter:  %s\n", localdate.QuarterOf(d))
	return nil
}

func jsonMode() bool {
	return jsonOutput || (cfg != nil && cfg.Output.JSON())
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
