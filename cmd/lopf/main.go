package main

import (
	"flag"
	"log"
	"os"

	"github.com/ohowland/cgc_lopf/internal/pkg/lopf"
	"github.com/ohowland/cgc_lopf/internal/pkg/network"
	"github.com/ohowland/cgc_lopf/internal/pkg/solver"
)

func main() {
	configPath := flag.String("config", "./config/network.json", "network configuration file")
	solverName := flag.String("solver", "highs", "solver backend: highs, glpk or simplex")
	keepFiles := flag.Bool("keep", false, "keep the serialized problem file")
	flag.Parse()

	log.Println("[Main] Starting CGC_LOPF v0.1.0")

	log.Println("[Main] Loading Network Configuration")
	net, err := loadNetwork(*configPath)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	log.Println("[Main] Solving Optimal Power Flow")
	res, err := lopf.Solve(net, lopf.Options{
		SolverName: *solverName,
		KeepFiles:  *keepFiles,
	})
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	if res.Status != solver.Optimal {
		log.Printf("[Main] Solve terminated: %s", res.Status)
		os.Exit(1)
	}

	log.Printf("[Main] Objective: %.4f", res.Objective)
	reportDispatch(net)
}

func loadNetwork(path string) (*network.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return network.FromConfig(data)
}

func reportDispatch(net *network.Network) {
	for _, b := range net.Buses {
		for _, t := range net.Snapshots {
			log.Printf("[Main] bus %s @ %s: injection %.4f MW, price %.4f",
				b.Name, t, b.P[t], b.MarginalPrice[t])
		}
	}
	for _, g := range net.Generators {
		for _, t := range net.Snapshots {
			log.Printf("[Main] generator %s @ %s: %.4f MW", g.Name, t, g.P[t])
		}
	}
	for _, s := range net.StorageUnits {
		for _, t := range net.Snapshots {
			log.Printf("[Main] storage %s @ %s: %.4f MW, soc %.4f MWh",
				s.Name, t, s.P[t], s.StateOfCharge[t])
		}
	}
}
