package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nutritrack/backend/internal/domain"
	"github.com/nutritrack/backend/internal/infrastructure/catalog"
	"github.com/nutritrack/backend/internal/usecase"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- estimate ---

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a daily nutrition target",
	Long: `Estimate a daily nutrition target from body measurements.

Examples:
  nutritrack estimate --age 30 --weight 70 --height 175 --activity moderate --goal maintain
  nutritrack estimate --age 45 --weight 82.5 --height 180 --activity sedentary --goal lose_weight`,
	RunE: func(cmd *cobra.Command, args []string) error {
		age, _ := cmd.Flags().GetInt("age")
		weight, _ := cmd.Flags().GetFloat64("weight")
		height, _ := cmd.Flags().GetFloat64("height")
		activity, _ := cmd.Flags().GetString("activity")
		goal, _ := cmd.Flags().GetString("goal")

		profile := domain.BodyProfile{
			AgeYears:      age,
			WeightKg:      weight,
			HeightCm:      height,
			ActivityLevel: domain.ActivityLevel(activity),
			Goal:          domain.Goal(goal),
		}
		if err := usecase.ValidateBodyProfile(profile); err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), usecase.Estimate(profile))
	},
}

func init() {
	estimateCmd.Flags().Int("age", 0, "age in years")
	estimateCmd.Flags().Float64("weight", 0, "weight in kg")
	estimateCmd.Flags().Float64("height", 0, "height in cm")
	estimateCmd.Flags().String("activity", string(domain.ActivityModerate), "sedentary, light, moderate, active or very_active")
	estimateCmd.Flags().String("goal", string(domain.GoalMaintain), "lose_weight, maintain, gain_muscle or gain_weight")
	_ = estimateCmd.MarkFlagRequired("age")
	_ = estimateCmd.MarkFlagRequired("weight")
	_ = estimateCmd.MarkFlagRequired("height")
}

// --- search ---

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the food catalog by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")

		foods, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), usecase.SearchCatalog(foods, args[0]))
	},
}

func init() {
	searchCmd.Flags().String("catalog", "", "path to a YAML food catalog (default: bundled catalog)")
}

// --- scale ---

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Scale a catalog food to a custom portion",
	Long: `Scale a catalog food to a custom portion.

Examples:
  nutritrack scale --food Pomme --portion 150
  nutritrack scale --food "riz blanc cuit" --portion 250`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("food")
		portion, _ := cmd.Flags().GetString("portion")
		catalogPath, _ := cmd.Flags().GetString("catalog")

		foods, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		food, ok := usecase.FindFood(foods, name)
		if !ok {
			return fmt.Errorf("food %q not found in catalog", name)
		}

		adjusted, err := usecase.Scale(food, usecase.ParsePortionInput(portion))
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), adjusted)
	},
}

func init() {
	scaleCmd.Flags().String("food", "", "exact catalog food name (case-insensitive)")
	scaleCmd.Flags().String("portion", "", "portion in grams (default 100)")
	scaleCmd.Flags().String("catalog", "", "path to a YAML food catalog (default: bundled catalog)")
	_ = scaleCmd.MarkFlagRequired("food")
}
