package scheduler

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/kernels"
	"github.com/gomlx/kernels/dtypes"
	"github.com/gomlx/kernels/tensors"
	"github.com/gomlx/kernels/windows"
)

// recordingKernel records every Run call so tests can check how the window
// was partitioned.
type recordingKernel struct {
	window windows.Window

	mu    sync.Mutex
	runs  []windows.Window
	infos []kernels.ThreadInfo
	err   error
}

func (k *recordingKernel) Window() windows.Window { return k.window }

func (k *recordingKernel) Run(w windows.Window, info kernels.ThreadInfo) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.runs = append(k.runs, w)
	k.infos = append(k.infos, info)
	return k.err
}

func TestSchedulePartitions(t *testing.T) {
	k := &recordingKernel{window: windows.Window{
		{Start: 0, End: 10, Step: 1},
		{Start: 0, End: 64, Step: 16},
	}}
	require.NoError(t, New(WithWorkers(4)).Schedule(k, 0))
	require.Len(t, k.runs, 4)

	// The parts must tile the split axis exactly, and each must be a valid
	// sub-window.
	covered := 0
	for _, part := range k.runs {
		assert.True(t, k.window.IsValidSub(part), "part %s", part)
		covered += part.NumIterations(0)
	}
	assert.Equal(t, 10, covered)
	for _, info := range k.infos {
		assert.Equal(t, 4, info.NumThreads)
	}
}

func TestScheduleSinglePartFastPath(t *testing.T) {
	k := &recordingKernel{window: windows.Window{
		{Start: 0, End: 1, Step: 1},
		{Start: 0, End: 64, Step: 16},
	}}
	// Only one iteration on the split axis: the whole window runs inline.
	require.NoError(t, New(WithWorkers(8)).Schedule(k, 0))
	require.Len(t, k.runs, 1)
	assert.Equal(t, k.window, k.runs[0])
	assert.Equal(t, kernels.ThreadInfo{ThreadID: 0, NumThreads: 1}, k.infos[0])
}

func TestSchedulePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	k := &recordingKernel{
		window: windows.Window{{Start: 0, End: 8, Step: 1}, {Start: 0, End: 16, Step: 16}},
		err:    boom,
	}
	assert.ErrorIs(t, New(WithWorkers(2)).Schedule(k, 0), boom)
}

func TestScheduleSubtraction(t *testing.T) {
	const rows, cols = 64, 48
	in1Data := make([]float32, rows*cols)
	in2Data := make([]float32, rows*cols)
	want := make([]float32, rows*cols)
	for i := range in1Data {
		in1Data[i] = float32(i) * 0.5
		in2Data[i] = float32(i % 17)
		want[i] = in1Data[i] - in2Data[i]
	}

	k := kernels.NewSubtraction()
	in1 := tensors.New(dtypes.Float32, rows, cols)
	in2 := tensors.New(dtypes.Float32, rows, cols)
	out := tensors.New(dtypes.Float32, rows, cols)
	require.NoError(t, k.Configure(in1, in2, out, kernels.PolicyWrap))
	in1.Allocate()
	in2.Allocate()
	out.Allocate()
	tensors.SetFlatData(in1, in1Data)
	tensors.SetFlatData(in2, in2Data)

	require.NoError(t, New(WithWorkers(7)).Schedule(k, 0))
	assert.Equal(t, want, tensors.FlatData[float32](out))
}
