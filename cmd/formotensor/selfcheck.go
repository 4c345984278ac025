package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/formotensor/formotensor/bridge"
	"github.com/formotensor/formotensor/device"
	"github.com/formotensor/formotensor/internal/mocksim"
	"github.com/formotensor/formotensor/tensor"
)

// selfcheckShapes cycles through a few representative tensor ranks.
var selfcheckShapes = []tensor.Shape{
	{2, 2},
	{4},
	{2, 2, 2},
}

func runSelfcheck(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)
	rng := rand.New(rand.NewSource(cfg.Seed))

	// Build a synthetic state: healthy tensors alternating between the two
	// surface conventions, plus one slot whose accessor fails.
	tensors := make([]any, 0, cfg.Tensors+1)
	for i := 0; i < cfg.Tensors; i++ {
		shape := selfcheckShapes[i%len(selfcheckShapes)]
		values := randomAmplitudes(rng, shape.NumElements())
		if i%2 == 0 {
			tensors = append(tensors, mocksim.NewMethodTensor(shape, values))
		} else {
			tensors = append(tensors, mocksim.NewFieldTensor(shape, values))
		}
	}
	tensors = append(tensors, mocksim.FailingTensor("synthetic accessor failure"))
	state := mocksim.NewState(cfg.Qubits, tensors...)

	b := bridge.New(device.UnifiedMemory{}, bridge.WithLogger(logger))

	ok, err := bridge.SupportsTensorNetwork(state)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("synthetic state reports no tensor network support")
	}
	logger.Info("tensor network introspection available")

	qubits, err := bridge.QubitCount(state)
	if err != nil {
		return err
	}
	logger.Info("state probed", "qubits", qubits)

	infos, err := b.ExtractAll(state)
	if err != nil {
		return err
	}
	logger.Info("network enumerated",
		"attempted", len(tensors), "described", len(infos))

	var extracted, totalBytes int
	for _, info := range infos {
		fmt.Println(info)
		if !info.DataAvailable {
			continue
		}
		host, err := b.ExtractHostCopy(state, info.Index)
		if err != nil {
			logger.Warn("extraction failed", "index", info.Index, "err", err)
			continue
		}
		logger.Debug("tensor staged to host",
			"index", info.Index, "shape", host.Shape(), "bytes", host.SizeBytes())
		extracted++
		totalBytes += host.SizeBytes()
	}

	logger.Info("selfcheck complete",
		"extracted", extracted, "host_bytes", totalBytes)
	if extracted == 0 {
		return fmt.Errorf("no tensor could be extracted")
	}
	return nil
}

func randomAmplitudes(rng *rand.Rand, n int) []complex128 {
	values := make([]complex128, n)
	for i := range values {
		values[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return values
}
