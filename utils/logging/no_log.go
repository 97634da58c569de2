// Copyright (C) 2024-2026, MeshKit Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "go.uber.org/zap"

var NoLog Logger = noLog{}

// noLog drops all messages. Useful as the default logger in tests.
type noLog struct{}

func (noLog) Write(p []byte) (int, error) {
	return len(p), nil
}

func (noLog) Fatal(string, ...zap.Field) {}

func (noLog) Error(string, ...zap.Field) {}

func (noLog) Warn(string, ...zap.Field) {}

func (noLog) Info(string, ...zap.Field) {}

func (noLog) Trace(string, ...zap.Field) {}

func (noLog) Debug(string, ...zap.Field) {}

func (noLog) Verbo(string, ...zap.Field) {}

func (noLog) SetLevel(Level) {}

func (noLog) Enabled(Level) bool {
	return false
}

func (noLog) Stop() {}
