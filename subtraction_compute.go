package kernels

// The type-specialized subtraction routines. Every routine consumes exactly
// subElementsPerIteration elements per window step: one 16-lane group for
// the 8-bit types, two 8-lane groups for the 16-bit types, and four 4-lane
// groups for Float32, filling the same native register capacity either way.
//
// The routines walk the three tensors with independent iterators advanced
// in lock-step by windows.Loop; configuration guarantees the padded
// allocations cover every vector access.

import (
	"github.com/gomlx/kernels/internal/simd"
	"github.com/gomlx/kernels/tensors"
	"github.com/gomlx/kernels/windows"
)

func subWrapInt8(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Int8s(), input2.Int8s(), output.Int8s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		a := simd.LoadInt8x16(in1[it1.Offset():])
		b := simd.LoadInt8x16(in2[it2.Offset():])
		a.Sub(b).Store(out[itOut.Offset():])
	}, it1, it2, itOut)
}

func subSaturateInt8(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Int8s(), input2.Int8s(), output.Int8s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		a := simd.LoadInt8x16(in1[it1.Offset():])
		b := simd.LoadInt8x16(in2[it2.Offset():])
		a.SatSub(b).Store(out[itOut.Offset():])
	}, it1, it2, itOut)
}

func subWrapUint8(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Uint8s(), input2.Uint8s(), output.Uint8s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		a := simd.LoadUint8x16(in1[it1.Offset():])
		b := simd.LoadUint8x16(in2[it2.Offset():])
		a.Sub(b).Store(out[itOut.Offset():])
	}, it1, it2, itOut)
}

func subSaturateUint8(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Uint8s(), input2.Uint8s(), output.Uint8s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		a := simd.LoadUint8x16(in1[it1.Offset():])
		b := simd.LoadUint8x16(in2[it2.Offset():])
		a.SatSub(b).Store(out[itOut.Offset():])
	}, it1, it2, itOut)
}

func subWrapInt16(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Int16s(), input2.Int16s(), output.Int16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		o1, o2, oOut := it1.Offset(), it2.Offset(), itOut.Offset()
		a0 := simd.LoadInt16x8(in1[o1:])
		a1 := simd.LoadInt16x8(in1[o1+8:])
		b0 := simd.LoadInt16x8(in2[o2:])
		b1 := simd.LoadInt16x8(in2[o2+8:])
		a0.Sub(b0).Store(out[oOut:])
		a1.Sub(b1).Store(out[oOut+8:])
	}, it1, it2, itOut)
}

func subSaturateInt16(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Int16s(), input2.Int16s(), output.Int16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		o1, o2, oOut := it1.Offset(), it2.Offset(), itOut.Offset()
		a0 := simd.LoadInt16x8(in1[o1:])
		a1 := simd.LoadInt16x8(in1[o1+8:])
		b0 := simd.LoadInt16x8(in2[o2:])
		b1 := simd.LoadInt16x8(in2[o2+8:])
		a0.SatSub(b0).Store(out[oOut:])
		a1.SatSub(b1).Store(out[oOut+8:])
	}, it1, it2, itOut)
}

// subFloat16 serves both policies: IEEE subtraction has no wrap/saturate
// distinction. Configuration only resolves it when the CPU reports native
// half-precision support.
func subFloat16(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Float16s(), input2.Float16s(), output.Float16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		o1, o2, oOut := it1.Offset(), it2.Offset(), itOut.Offset()
		a0 := simd.LoadFloat16x8(in1[o1:])
		a1 := simd.LoadFloat16x8(in1[o1+8:])
		b0 := simd.LoadFloat16x8(in2[o2:])
		b1 := simd.LoadFloat16x8(in2[o2+8:])
		a0.Sub(b0).Store(out[oOut:])
		a1.Sub(b1).Store(out[oOut+8:])
	}, it1, it2, itOut)
}

// subFloat32 serves both policies, like subFloat16.
func subFloat32(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Float32s(), input2.Float32s(), output.Float32s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		o1, o2, oOut := it1.Offset(), it2.Offset(), itOut.Offset()
		for group := 0; group < 4; group++ {
			a := simd.LoadFloat32x4(in1[o1+4*group:])
			b := simd.LoadFloat32x4(in2[o2+4*group:])
			a.Sub(b).Store(out[oOut+4*group:])
		}
	}, it1, it2, itOut)
}

// subWrapInt16Uint8 computes int16 - zero-extended uint8 -> int16.
func subWrapInt16Uint8(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Int16s(), input2.Uint8s(), output.Int16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		o1, oOut := it1.Offset(), itOut.Offset()
		bv := simd.LoadUint8x16(in2[it2.Offset():])
		a0 := simd.LoadInt16x8(in1[o1:])
		a1 := simd.LoadInt16x8(in1[o1+8:])
		a0.Sub(bv.WidenLow()).Store(out[oOut:])
		a1.Sub(bv.WidenHigh()).Store(out[oOut+8:])
	}, it1, it2, itOut)
}

func subSaturateInt16Uint8(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Int16s(), input2.Uint8s(), output.Int16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		o1, oOut := it1.Offset(), itOut.Offset()
		bv := simd.LoadUint8x16(in2[it2.Offset():])
		a0 := simd.LoadInt16x8(in1[o1:])
		a1 := simd.LoadInt16x8(in1[o1+8:])
		a0.SatSub(bv.WidenLow()).Store(out[oOut:])
		a1.SatSub(bv.WidenHigh()).Store(out[oOut+8:])
	}, it1, it2, itOut)
}

// subWrapUint8Int16 computes zero-extended uint8 - int16 -> int16, the
// negation pattern of subWrapInt16Uint8.
func subWrapUint8Int16(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Uint8s(), input2.Int16s(), output.Int16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		o2, oOut := it2.Offset(), itOut.Offset()
		av := simd.LoadUint8x16(in1[it1.Offset():])
		b0 := simd.LoadInt16x8(in2[o2:])
		b1 := simd.LoadInt16x8(in2[o2+8:])
		av.WidenLow().Sub(b0).Store(out[oOut:])
		av.WidenHigh().Sub(b1).Store(out[oOut+8:])
	}, it1, it2, itOut)
}

func subSaturateUint8Int16(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Uint8s(), input2.Int16s(), output.Int16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		o2, oOut := it2.Offset(), itOut.Offset()
		av := simd.LoadUint8x16(in1[it1.Offset():])
		b0 := simd.LoadInt16x8(in2[o2:])
		b1 := simd.LoadInt16x8(in2[o2+8:])
		av.WidenLow().SatSub(b0).Store(out[oOut:])
		av.WidenHigh().SatSub(b1).Store(out[oOut+8:])
	}, it1, it2, itOut)
}

// subWrapUint8Uint8Int16 subtracts two uint8 tensors into an int16 output,
// avoiding the unsigned underflow of the same-type Uint8 kernel.
func subWrapUint8Uint8Int16(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Uint8s(), input2.Uint8s(), output.Int16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		oOut := itOut.Offset()
		av := simd.LoadUint8x16(in1[it1.Offset():])
		bv := simd.LoadUint8x16(in2[it2.Offset():])
		av.WidenLow().Sub(bv.WidenLow()).Store(out[oOut:])
		av.WidenHigh().Sub(bv.WidenHigh()).Store(out[oOut+8:])
	}, it1, it2, itOut)
}

func subSaturateUint8Uint8Int16(input1, input2, output *tensors.Tensor, w windows.Window) {
	in1, in2, out := input1.Uint8s(), input2.Uint8s(), output.Int16s()
	it1 := tensors.NewIterator(input1, w)
	it2 := tensors.NewIterator(input2, w)
	itOut := tensors.NewIterator(output, w)
	windows.Loop(w, func() {
		oOut := itOut.Offset()
		av := simd.LoadUint8x16(in1[it1.Offset():])
		bv := simd.LoadUint8x16(in2[it2.Offset():])
		av.WidenLow().SatSub(bv.WidenLow()).Store(out[oOut:])
		av.WidenHigh().SatSub(bv.WidenHigh()).Store(out[oOut+8:])
	}, it1, it2, itOut)
}
