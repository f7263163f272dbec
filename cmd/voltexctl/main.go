package main

import (
	"encoding/json"
	"fmt"
	"os"

	cable "Voltex/internal/calc/cable"
	ohm "Voltex/internal/calc/ohm"
	"Voltex/internal/calc/tables"
	wire "Voltex/internal/calc/wire"

	"github.com/spf13/cobra"
)

var asJSON bool

func printResult(v any, text func()) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(v)
		return
	}
	text()
}

func main() {
	root := &cobra.Command{
		Use:   "voltexctl",
		Short: "Cable sizing and Ohm's law calculators on the command line",
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as JSON")

	root.AddCommand(ohmCmd(), resistanceCmd(), chooseCmd(), wireCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func ohmCmd() *cobra.Command {
	var in ohm.Input
	cmd := &cobra.Command{
		Use:   "ohm",
		Short: "Solve two unknown electrical quantities from two known ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := ohm.Calculate(in)
			if err != nil {
				return err
			}
			printResult(res, func() {
				fmt.Printf("Resistance: %.2f Ohm\n", res.Resistance)
				fmt.Printf("Current:    %.2f A\n", res.Current)
				fmt.Printf("Voltage:    %.2f V\n", res.Voltage)
				fmt.Printf("Power:      %.2f W\n", res.Power)
				fmt.Println(res.Notes)
			})
			return nil
		},
	}
	cmd.Flags().Float64VarP(&in.Resistance, "resistance", "r", 0, "resistance in Ohm (0 = unknown)")
	cmd.Flags().Float64VarP(&in.Current, "current", "i", 0, "current in A (0 = unknown)")
	cmd.Flags().Float64VarP(&in.Voltage, "voltage", "v", 0, "voltage in V (0 = unknown)")
	cmd.Flags().Float64VarP(&in.Power, "power", "p", 0, "power in W (0 = unknown)")
	cmd.Flags().BoolVar(&in.ThreePhase, "three-phase", false, "treat voltage as line-to-line three-phase")
	cmd.Flags().Float64Var(&in.PowerFactor, "pf", 1.0, "power factor for three-phase")
	return cmd
}

func resistanceCmd() *cobra.Command {
	var (
		length   float64
		area     float64
		material string
		temp     float64
	)
	cmd := &cobra.Command{
		Use:   "resistance",
		Short: "Cable resistance from length, cross-section and material",
		RunE: func(cmd *cobra.Command, args []string) error {
			mat, err := tables.MaterialOf(material)
			if err != nil {
				return err
			}
			r, err := cable.Resistance(length, area, mat, temp)
			if err != nil {
				return err
			}
			printResult(map[string]float64{"resistance_ohm": r}, func() {
				fmt.Printf("Resistance: %.6f Ohm\n", r)
			})
			return nil
		},
	}
	cmd.Flags().Float64VarP(&length, "length", "l", 100, "cable length in m")
	cmd.Flags().Float64VarP(&area, "area", "a", 2.5, "cross-section in mm2")
	cmd.Flags().StringVarP(&material, "material", "m", "copper", "conductor material (copper|aluminum)")
	cmd.Flags().Float64VarP(&temp, "temp", "t", 20, "conductor temperature in C")
	return cmd
}

func chooseCmd() *cobra.Command {
	var in cable.Input
	var material, method string
	cmd := &cobra.Command{
		Use:   "choose",
		Short: "Pick a standard cable size for a load and installation",
		RunE: func(cmd *cobra.Command, args []string) error {
			mat, err := tables.MaterialOf(material)
			if err != nil {
				return err
			}
			in.Material = mat
			if method != "" {
				m, err := tables.MethodOf(method)
				if err != nil {
					return err
				}
				in.Method = m
			}
			res, err := cable.Choose(in)
			if err != nil {
				return err
			}
			printResult(res, func() {
				fmt.Printf("Required area:    %.2f mm2\n", res.RequiredArea)
				fmt.Printf("Recommended size: %g mm2\n", res.RecommendedSize)
				fmt.Printf("Resistance:       %.6f Ohm\n", res.Resistance)
				fmt.Printf("Voltage drop:     %.2f V (%.1f%% of max)\n", res.VoltageDrop, res.DropPercent)
				if res.Unrated {
					fmt.Println("Current rating:   not tabulated for this size")
				} else {
					fmt.Printf("Derated rating:   %.2f A (adjusted current %.2f A)\n", res.DeratedRating, res.AdjustedCurrent)
				}
				fmt.Println(res.Notes)
			})
			return nil
		},
	}
	cmd.Flags().Float64VarP(&in.Current, "current", "i", 10, "load current in A")
	cmd.Flags().Float64VarP(&in.LengthM, "length", "l", 100, "cable length in m")
	cmd.Flags().Float64VarP(&in.MaxDropV, "max-drop", "d", 5, "max allowed voltage drop in V")
	cmd.Flags().StringVarP(&material, "material", "m", "copper", "conductor material (copper|aluminum)")
	cmd.Flags().Float64Var(&in.AmbientC, "ambient", 30, "ambient temperature in C")
	cmd.Flags().IntVar(&in.NumCores, "cores", 2, "cores under load")
	cmd.Flags().StringVar(&method, "method", "C", "installation method (100|101|102|103|A|B|C)")
	cmd.Flags().BoolVar(&in.ThreePhase, "three-phase", false, "three-phase system")
	cmd.Flags().Float64Var(&in.PowerFactor, "pf", 0.8, "power factor for three-phase")
	return cmd
}

func wireCmd() *cobra.Command {
	var in wire.Input
	var material string
	cmd := &cobra.Command{
		Use:   "wire",
		Short: "DC voltage-drop and wire-gauge selection (metric and AWG)",
		RunE: func(cmd *cobra.Command, args []string) error {
			mat, err := tables.MaterialOf(material)
			if err != nil {
				return err
			}
			in.Material = mat
			res, err := wire.Calculate(in)
			if err != nil {
				return err
			}
			printResult(res, func() {
				fmt.Printf("Load current:   %.3f A\n", res.LoadCurrent)
				fmt.Printf("Allowed drop:   %.3f V\n", res.AllowedDropV)
				fmt.Printf("Required area:  %.3f mm2 per conductor\n", res.RequiredAreaMM2)
				for _, rec := range []wire.Recommendation{res.Metric, res.AWG} {
					fmt.Printf("%-10s loop %.6f Ohm, drop %.4f V (%.2f%%), loss %.3f W, load %.3f V\n",
						rec.Label, rec.LoopResistance, rec.VoltageDrop, rec.DropPct, rec.WireLossW, rec.LoadVoltage)
				}
			})
			return nil
		},
	}
	cmd.Flags().Float64VarP(&in.SupplyVoltage, "voltage", "v", 24, "supply voltage in V")
	cmd.Flags().Float64VarP(&in.OneWayLengthM, "length", "l", 10, "one-way cable length in m")
	cmd.Flags().StringVarP(&material, "material", "m", "copper", "conductor material (copper|aluminum)")
	cmd.Flags().Float64VarP(&in.ConductorC, "temp", "t", 30, "conductor temperature in C")
	cmd.Flags().IntVar(&in.ParallelPerLeg, "parallel", 1, "parallel conductors per leg")
	cmd.Flags().Float64VarP(&in.LoadPowerW, "power", "p", 0, "load power in W (alternative to --current)")
	cmd.Flags().Float64VarP(&in.LoadCurrentA, "current", "i", 0, "load current in A")
	cmd.Flags().Float64VarP(&in.MaxDropPct, "drop-pct", "d", 3, "max allowed drop as % of supply voltage")
	return cmd
}
