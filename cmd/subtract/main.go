// subtract is a small demo and benchmark driver for the subtraction kernel:
// it builds two float32 tensors, runs output = input1 - input2 across
// workers, and reports the throughput.
//
// Example:
//
//	go run ./cmd/subtract -rows=4096 -cols=4096 -workers=8 -policy=saturate -v=2
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/gomlx/kernels"
	"github.com/gomlx/kernels/dtypes"
	"github.com/gomlx/kernels/scheduler"
	"github.com/gomlx/kernels/tensors"
)

var (
	flagRows    = flag.Int("rows", 1024, "Number of rows of the tensors.")
	flagCols    = flag.Int("cols", 1024, "Number of columns of the tensors (the vectorized axis).")
	flagWorkers = flag.Int("workers", 0, "Number of workers; 0 means one per CPU.")
	flagPolicy  = flag.String("policy", "wrap", "Overflow policy: wrap or saturate (moot for floats).")
	flagRepeats = flag.Int("repeats", 10, "How many times to run the configured kernel.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	policy := must.M1(kernels.ConvertPolicyString(*flagPolicy))

	rows, cols := *flagRows, *flagCols
	k := kernels.NewSubtraction()
	input1 := tensors.New(dtypes.Float32, rows, cols)
	input2 := tensors.New(dtypes.Float32, rows, cols)
	output := tensors.New(dtypes.Float32, rows, cols)
	must.M(k.Configure(input1, input2, output, policy))
	input1.Allocate()
	input2.Allocate()
	output.Allocate()

	data1 := make([]float32, rows*cols)
	data2 := make([]float32, rows*cols)
	for i := range data1 {
		data1[i] = float32(i%1000) * 0.5
		data2[i] = float32(i % 997)
	}
	tensors.SetFlatData(input1, data1)
	tensors.SetFlatData(input2, data2)

	opts := []scheduler.Option{}
	if *flagWorkers > 0 {
		opts = append(opts, scheduler.WithWorkers(*flagWorkers))
	}
	sched := scheduler.New(opts...)

	start := time.Now()
	for r := 0; r < *flagRepeats; r++ {
		must.M(sched.Schedule(k, 0))
	}
	elapsed := time.Since(start)

	var checksum float64
	for _, v := range tensors.FlatData[float32](output) {
		checksum += float64(v)
	}
	elements := int64(rows) * int64(cols) * int64(*flagRepeats)
	fmt.Printf("%d x %d float32, policy=%s: %d elements in %s (%.1f M elements/s), checksum=%g\n",
		rows, cols, policy, elements, elapsed,
		float64(elements)/elapsed.Seconds()/1e6, checksum)
}
