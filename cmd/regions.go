package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bizzlechizzle/atlas-cli/internal/region"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Region classification tools",
}

var (
	resolveCounty    string
	resolveState     string
	resolveCountry   string
	resolveContinent string
	resolveLat       float64
	resolveLng       float64
)

var regionsResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the complete region fields for one record",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, resolver, err := loadRegionEngine()
		if err != nil {
			return err
		}

		in := region.Input{
			County:    resolveCounty,
			State:     resolveState,
			Country:   resolveCountry,
			Continent: resolveContinent,
		}
		if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
			in.Lat, in.Lng = &resolveLat, &resolveLng
		}

		return writeOutput("", resolver.Resolve(in))
	},
}

var (
	adjacentState string
	adjacentLat   float64
	adjacentLng   float64
)

var regionsAdjacentCmd = &cobra.Command{
	Use:   "adjacent",
	Short: "List candidate regions for a state, with nearby neighbors",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, _, err := loadRegionEngine()
		if err != nil {
			return err
		}

		var lat, lng *float64
		if cmd.Flags().Changed("lat") && cmd.Flags().Changed("lng") {
			lat, lng = &adjacentLat, &adjacentLng
		}

		regions := ds.FilterAdjacentRegions(adjacentState, lat, lng, adjacentOptions())
		return writeOutput("", map[string][]string{"regions": regions})
	},
}

var (
	buildShapefile  string
	buildNameField  string
	buildStateField string
	buildOut        string
)

var regionsBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a region dataset from a polygon shapefile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := region.BuildDatasetFromShapefile(buildShapefile, region.BuildOptions{
			NameField:  buildNameField,
			StateField: buildStateField,
		})
		if err != nil {
			return err
		}

		if err := ds.Save(buildOut); err != nil {
			return err
		}

		zap.L().Info("dataset built",
			zap.String("shapefile", buildShapefile),
			zap.String("out", buildOut),
			zap.Int("regions", len(ds.Regions)),
		)
		return nil
	},
}

func init() {
	regionsResolveCmd.Flags().StringVar(&resolveCounty, "county", "", "county name")
	regionsResolveCmd.Flags().StringVar(&resolveState, "state", "", "two-letter state code")
	regionsResolveCmd.Flags().StringVar(&resolveCountry, "country", "", "country name")
	regionsResolveCmd.Flags().StringVar(&resolveContinent, "continent", "", "continent name")
	regionsResolveCmd.Flags().Float64Var(&resolveLat, "lat", 0, "latitude")
	regionsResolveCmd.Flags().Float64Var(&resolveLng, "lng", 0, "longitude")

	regionsAdjacentCmd.Flags().StringVar(&adjacentState, "state", "", "two-letter state code (required)")
	regionsAdjacentCmd.Flags().Float64Var(&adjacentLat, "lat", 0, "latitude")
	regionsAdjacentCmd.Flags().Float64Var(&adjacentLng, "lng", 0, "longitude")
	_ = regionsAdjacentCmd.MarkFlagRequired("state")

	regionsBuildCmd.Flags().StringVar(&buildShapefile, "shapefile", "", "path to .shp file (required)")
	regionsBuildCmd.Flags().StringVar(&buildNameField, "name-field", "NAME", "attribute column holding the region name")
	regionsBuildCmd.Flags().StringVar(&buildStateField, "state-field", "STATE", "attribute column holding the state code")
	regionsBuildCmd.Flags().StringVar(&buildOut, "out", "regions.yaml", "output dataset path")
	_ = regionsBuildCmd.MarkFlagRequired("shapefile")

	regionsCmd.AddCommand(regionsResolveCmd, regionsAdjacentCmd, regionsBuildCmd)
	rootCmd.AddCommand(regionsCmd)
}
