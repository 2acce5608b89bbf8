package kernels

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/kernels/dtypes"
	"github.com/gomlx/kernels/internal/cpufeatures"
	"github.com/gomlx/kernels/tensors"
	"github.com/gomlx/kernels/windows"
)

// subElementsPerIteration is how many elements every subtraction compute
// function consumes per window step: one native 128-bit register of 8-bit
// lanes, and correspondingly more registers for the wider types.
const subElementsPerIteration = 16

// subFunc is one type-specialized subtraction routine. By the time it runs,
// configuration has fully validated types and shapes, so it performs no
// checks of its own.
type subFunc func(input1, input2, output *tensors.Tensor, w windows.Window)

// subKey selects a subFunc: the policy and the element types of
// (input1, input2, output).
type subKey struct {
	policy     ConvertPolicy
	input1Type dtypes.DType
	input2Type dtypes.DType
	outputType dtypes.DType
}

// subFunctions is the closed dispatch table of the subtraction kernel,
// fully built at package initialization and read-only afterwards.
//
// The float entries alias one function per type: IEEE subtraction has no
// wrap/saturate distinction. The QInt16 entries alias the Int16 functions:
// at equal fractional-bit positions -- which configuration enforces --
// fixed-point subtraction is integer subtraction of the raw values.
var subFunctions = map[subKey]subFunc{
	{PolicyWrap, dtypes.QInt8, dtypes.QInt8, dtypes.QInt8}:     subWrapInt8,
	{PolicySaturate, dtypes.QInt8, dtypes.QInt8, dtypes.QInt8}: subSaturateInt8,

	{PolicyWrap, dtypes.Uint8, dtypes.Uint8, dtypes.Uint8}:     subWrapUint8,
	{PolicySaturate, dtypes.Uint8, dtypes.Uint8, dtypes.Uint8}: subSaturateUint8,

	// Both inputs 8-bit, output promoted to 16-bit to keep the full range
	// of the difference.
	{PolicyWrap, dtypes.Uint8, dtypes.Uint8, dtypes.Int16}:     subWrapUint8Uint8Int16,
	{PolicySaturate, dtypes.Uint8, dtypes.Uint8, dtypes.Int16}: subSaturateUint8Uint8Int16,

	// Mixed-width: the 8-bit operand is zero-extended to 16 bits. The two
	// operand orders are distinct functions -- subtraction does not
	// commute.
	{PolicyWrap, dtypes.Uint8, dtypes.Int16, dtypes.Int16}:     subWrapUint8Int16,
	{PolicySaturate, dtypes.Uint8, dtypes.Int16, dtypes.Int16}: subSaturateUint8Int16,
	{PolicyWrap, dtypes.Int16, dtypes.Uint8, dtypes.Int16}:     subWrapInt16Uint8,
	{PolicySaturate, dtypes.Int16, dtypes.Uint8, dtypes.Int16}: subSaturateInt16Uint8,

	{PolicyWrap, dtypes.QInt16, dtypes.QInt16, dtypes.QInt16}:     subWrapInt16,
	{PolicySaturate, dtypes.QInt16, dtypes.QInt16, dtypes.QInt16}: subSaturateInt16,
	{PolicyWrap, dtypes.Int16, dtypes.Int16, dtypes.Int16}:        subWrapInt16,
	{PolicySaturate, dtypes.Int16, dtypes.Int16, dtypes.Int16}:    subSaturateInt16,

	{PolicyWrap, dtypes.Float16, dtypes.Float16, dtypes.Float16}:     subFloat16,
	{PolicySaturate, dtypes.Float16, dtypes.Float16, dtypes.Float16}: subFloat16,
	{PolicyWrap, dtypes.Float32, dtypes.Float32, dtypes.Float32}:     subFloat32,
	{PolicySaturate, dtypes.Float32, dtypes.Float32, dtypes.Float32}: subFloat32,
}

// SubtractionKernel computes output = input1 - input2 elementwise over a
// window, with the overflow behavior selected by a ConvertPolicy.
//
// Create with NewSubtraction, call Configure exactly once, then Run any
// number of times over sub-windows of the configured window. A new
// operation gets a new instance.
type SubtractionKernel struct {
	kernelWindow

	input1, input2, output *tensors.Tensor
	fn                     subFunc
}

// Compile-time check.
var _ Kernel = (*SubtractionKernel)(nil)

// NewSubtraction returns an unconfigured subtraction kernel.
func NewSubtraction() *SubtractionKernel {
	return &SubtractionKernel{}
}

// Configure validates the tensors, resolves the compute function for
// (policy, input types, output type) and computes the kernel window and the
// tensors' padding requirements.
//
// If the output tensor's dimensions or dtype are unset they are
// auto-initialized: dimensions from input1, dtype by priority
// Int16 > Float16 > Float32 following the inputs' types.
//
// On failure the kernel remains unconfigured. Configuring twice with
// identical arguments is deterministic -- same function, window, and valid
// region.
func (k *SubtractionKernel) Configure(input1, input2, output *tensors.Tensor, policy ConvertPolicy) error {
	if input1 == nil || input2 == nil || output == nil {
		return errors.WithMessage(ErrInvalidArgument, "all of input1, input2 and output must be non-nil")
	}

	// Auto-initialize the output where still unset.
	outInfo := output.Info()
	outInfo.SetDimensionsIfEmpty(input1.Shape().Dimensions...)
	switch {
	case input1.DType() == dtypes.Int16 || input2.DType() == dtypes.Int16:
		outInfo.SetDTypeIfInvalid(dtypes.Int16)
	case input1.DType() == dtypes.Float16 || input2.DType() == dtypes.Float16:
		outInfo.SetDTypeIfInvalid(dtypes.Float16)
	case input1.DType() == dtypes.Float32 || input2.DType() == dtypes.Float32:
		outInfo.SetDTypeIfInvalid(dtypes.Float32)
	}

	if !input1.Shape().EqualDimensions(input2.Shape()) || !input1.Shape().EqualDimensions(output.Shape()) {
		return errors.WithMessagef(ErrShapeMismatch, "input1=%s, input2=%s, output=%s",
			input1.Shape(), input2.Shape(), output.Shape())
	}
	for _, t := range []*tensors.Tensor{input1, input2, output} {
		if !t.DType().IsSupported() {
			return errors.WithMessagef(ErrUnsupportedType, "tensor has dtype %s", t.DType())
		}
	}
	if output.DType() == dtypes.Uint8 &&
		(input1.DType() != dtypes.Uint8 || input2.DType() != dtypes.Uint8) {
		return errors.WithMessagef(ErrInvalidTypeCombination,
			"output can only be Uint8 if both inputs are Uint8, got input1=%s, input2=%s",
			input1.DType(), input2.DType())
	}
	if input1.DType().IsFixedPoint() || input2.DType().IsFixedPoint() || output.DType().IsFixedPoint() {
		if input1.DType() != input2.DType() || input1.DType() != output.DType() {
			return errors.WithMessagef(ErrFixedPointMismatch, "dtypes %s, %s, %s",
				input1.DType(), input2.DType(), output.DType())
		}
		pos := input1.Info().FixedPointPosition()
		if input2.Info().FixedPointPosition() != pos || output.Info().FixedPointPosition() != pos {
			return errors.WithMessagef(ErrFixedPointMismatch, "fractional-bit positions %d, %d, %d",
				pos, input2.Info().FixedPointPosition(), output.Info().FixedPointPosition())
		}
	}
	if !cpufeatures.Float16() &&
		(input1.DType() == dtypes.Float16 || input2.DType() == dtypes.Float16 || output.DType() == dtypes.Float16) {
		return errors.WithMessage(ErrUnsupportedType,
			"half-precision subtraction requires native float16 support on this CPU")
	}

	fn, found := subFunctions[subKey{policy, input1.DType(), input2.DType(), output.DType()}]
	if !found {
		return errors.WithMessagef(ErrInvalidTypeCombination,
			"subtraction is not defined for policy=%s, input1=%s, input2=%s, output=%s",
			policy, input1.DType(), input2.DType(), output.DType())
	}

	// Kernel window and padding: every tensor is accessed 16 contiguous
	// elements at a time, so the last axis is stepped by 16 and rounded up
	// to it; the overhang becomes right padding on each tensor.
	win := windows.CalculateMax(input1.Shape(), subElementsPerIteration)
	outputAccess := tensors.NewAccessHorizontal(output, 0, subElementsPerIteration)
	tensors.UpdateWindowAndPadding(win,
		tensors.NewAccessHorizontal(input1, 0, subElementsPerIteration),
		tensors.NewAccessHorizontal(input2, 0, subElementsPerIteration),
		outputAccess)
	validRegion := tensors.Intersect(input1.Info().ValidRegion(), input2.Info().ValidRegion())
	outputAccess.SetValidRegion(win, validRegion)

	k.input1, k.input2, k.output = input1, input2, output
	k.fn = fn
	k.configureWindow(win)
	klog.V(2).Infof("kernels: subtraction configured: %s - %s -> %s, policy=%s, window=%s",
		input1.Shape(), input2.Shape(), output.Shape(), policy, win)
	return nil
}

// Run executes the subtraction over w, which must be a valid sub-window of
// the configured window. It performs no tensor validation of its own:
// correctness of types and shapes was fully established by Configure.
func (k *SubtractionKernel) Run(w windows.Window, info ThreadInfo) error {
	_ = info // No per-thread state in this kernel.
	if !k.IsConfigured() {
		return errors.WithMessage(ErrNotConfigured, "Configure must succeed before Run")
	}
	if !k.Window().IsValidSub(w) {
		return errors.WithMessagef(ErrInvalidSubwindow, "window %s is not contained in the configured %s",
			w, k.Window())
	}
	k.fn(k.input1, k.input2, k.output, w)
	return nil
}
