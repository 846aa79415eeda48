package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish/sim"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show weapon and armor tables",
	Long: `Print the weapon catalog (in slot order) and the armor tiers sold
in the shop. Fire rates are shown at the current --fps.`,
	Args: cobra.NoArgs,
	Run:  runCatalog,
}

func runCatalog(_ *cobra.Command, _ []string) {
	weapons := styledTable("Slot", "Weapon", "Damage", "Shots/s", "Mode", "Speed", "Special")
	for i, w := range sim.Weapons() {
		mode := "manual"
		if w.Automatic {
			mode = "auto"
		}

		special := "-"
		switch {
		case w.Pellets > 1 && w.Explosive():
			special = fmt.Sprintf("%d pellets, blast %.0f", w.Pellets, w.BlastRadius)
		case w.Pellets > 1:
			special = fmt.Sprintf("%d pellets", w.Pellets)
		case w.Explosive():
			special = fmt.Sprintf("blast %.0f", w.BlastRadius)
		case w.Pierce > 0:
			special = fmt.Sprintf("pierces %d", w.Pierce)
		}

		weapons.Row(
			strconv.Itoa(i+1),
			w.Name,
			fmt.Sprintf("%.0f", w.Damage),
			fmt.Sprintf("%.1f", w.ShotsPerSecond(flagFPS)),
			mode,
			fmt.Sprintf("%+.0f%%", w.SpeedModifier*100),
			special,
		)
	}

	armors := styledTable("Slot", "Armor", "Protection", "Cost")
	for i, a := range sim.Armors() {
		armors.Row(
			strconv.Itoa(i+1),
			a.Name,
			fmt.Sprintf("%.0f%%", a.Protection*100),
			strconv.Itoa(a.Cost),
		)
	}

	fmt.Println("Weapons")
	fmt.Println(weapons)
	fmt.Println()
	fmt.Println("Armor (buy while paused with the slot key)")
	fmt.Println(armors)
}
