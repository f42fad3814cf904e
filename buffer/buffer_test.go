package buffer

// SPDX-License-Identifier: Apache-2.0

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_InlineBasics(t *testing.T) {
	b := New()
	assert.Equal(t, 0, b.Size())

	b.PushBack(1)
	b.PushBack(2)
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, uint32(1), b.Get(0))
	assert.Equal(t, uint32(2), b.Get(1))
	assert.Equal(t, uint32(2), b.Back())
	assert.Nil(t, b.heap)
}

func TestBuffer_InflatesBeyondInlineCap(t *testing.T) {
	b := New()
	for i := 0; i < InlineCap+3; i++ {
		b.PushBack(uint32(i))
	}
	assert.Equal(t, InlineCap+3, b.Size())
	assert.NotNil(t, b.heap)
	for i := 0; i < InlineCap+3; i++ {
		assert.Equal(t, uint32(i), b.Get(i))
	}
}

func TestBuffer_CopyOnWrite_HeapMode(t *testing.T) {
	b1 := New()
	for i := 0; i < 10; i++ {
		b1.PushBack(uint32(i))
	}

	b2 := b1.Copy()
	assert.True(t, b1.Equal(b2))

	b2.Set(0, 999)
	assert.Equal(t, uint32(0), b1.Get(0), "mutating b2 must not affect b1")
	assert.Equal(t, uint32(999), b2.Get(0))
}

func TestBuffer_CopyOnWrite_InlineMode(t *testing.T) {
	b1 := New()
	b1.PushBack(1)

	b2 := b1.Copy()
	b2.Set(0, 42)
	assert.Equal(t, uint32(1), b1.Get(0))
	assert.Equal(t, uint32(42), b2.Get(0))
}

func TestBuffer_ThreeWayShare(t *testing.T) {
	b1 := New()
	for i := 0; i < 10; i++ {
		b1.PushBack(uint32(i))
	}
	b2 := b1.Copy()
	b3 := b2.Copy()

	b2.Set(5, 111)

	assert.Equal(t, uint32(5), b1.Get(5))
	assert.Equal(t, uint32(111), b2.Get(5))
	assert.Equal(t, uint32(5), b3.Get(5))
}

func TestBuffer_ResizeGrowShrink(t *testing.T) {
	b := NewFilled(3, 0xFF)
	assert.Equal(t, 3, b.Size())
	for i := 0; i < 3; i++ {
		assert.Equal(t, uint32(0xFF), b.Get(i))
	}

	b.Resize(5, 0)
	assert.Equal(t, 5, b.Size())
	assert.Equal(t, uint32(0), b.Get(3))
	assert.Equal(t, uint32(0), b.Get(4))

	b.Resize(2, 0)
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, uint32(0xFF), b.Get(0))
}

func TestBuffer_PopBack(t *testing.T) {
	b := FromDigits([]uint32{1, 2, 3})
	b.PopBack()
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, uint32(2), b.Back())
}

func TestBuffer_FromDigitsAndEqual(t *testing.T) {
	a := FromDigits([]uint32{1, 2, 3, 4, 5})
	b := FromDigits([]uint32{1, 2, 3, 4, 5})
	c := FromDigits([]uint32{1, 2, 3, 4})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestBuffer_DataMutation(t *testing.T) {
	b1 := FromDigits([]uint32{1, 2, 3, 4, 5})
	b2 := b1.Copy()

	data := b2.Data()
	data[0] = 100

	assert.Equal(t, uint32(1), b1.Get(0))
	assert.Equal(t, uint32(100), b2.Get(0))
}
