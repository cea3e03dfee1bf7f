package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockBitWriter implements bitstream.BitWriter for testing
type MockBitWriter struct {
	mock.Mock
}

func NewMockBitWriter() *MockBitWriter {
	return &MockBitWriter{}
}

func (m *MockBitWriter) WriteBool(b bool) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBitWriter) WriteBits(r uint64, n uint8) error {
	args := m.Called(r, n)
	return args.Error(0)
}

// MockBitReader implements bitstream.BitReader for testing
type MockBitReader struct {
	mock.Mock
}

func NewMockBitReader() *MockBitReader {
	return &MockBitReader{}
}

func (m *MockBitReader) ReadBool() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockBitReader) ReadBits(n uint8) (uint64, error) {
	args := m.Called(n)
	return args.Get(0).(uint64), args.Error(1)
}
