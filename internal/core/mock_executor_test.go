package core_test

import (
	"context"
	"fmt"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockExecutor struct{ mock.Mock }

func (m *MockExecutor) ExecuteUpdate(ctx context.Context, sql string, args ...any) error {
	ret := m.Called(ctx, sql, args)
	return ret.Error(0)
}

func (m *MockExecutor) ExecuteQueryAndPrint(ctx context.Context, w io.Writer, sql string, args ...any) (int, error) {
	ret := m.Called(ctx, w, sql, args)
	if rows, ok := ret.Get(0).([]string); ok {
		for _, r := range rows {
			fmt.Fprintln(w, r)
		}
		return len(rows), ret.Error(1)
	}
	return ret.Int(0), ret.Error(1)
}

func (m *MockExecutor) ExecuteQueryAndCollect(ctx context.Context, sql string, args ...any) ([][]string, error) {
	ret := m.Called(ctx, sql, args)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([][]string), ret.Error(1)
}

func (m *MockExecutor) ExecuteQueryCount(ctx context.Context, sql string, args ...any) (int, error) {
	ret := m.Called(ctx, sql, args)
	return ret.Int(0), ret.Error(1)
}

func (m *MockExecutor) CurrentSequenceValue(ctx context.Context, sequence string) (int64, error) {
	ret := m.Called(ctx, sequence)
	return ret.Get(0).(int64), ret.Error(1)
}
