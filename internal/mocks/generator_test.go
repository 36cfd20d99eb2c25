package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/generation"
	"github.com/SouFien19/Ai-Resume-Builder-sub002/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	t.Run("Default text", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithText("hello")

		text, err := mockGen.GenerateText(context.Background(), "Test prompt", generation.WithMaxTokens(10))

		assert.NoError(t, err, "Should not return an error")
		assert.Equal(t, "hello", text)
		assert.Equal(t, 1, mockGen.CallCount(), "GenerateText should be called once")
		assert.Equal(t, "Test prompt", mockGen.LastPrompt(), "Should record correct prompt")
		assert.Equal(t, 10, mockGen.LastRequest().MaxTokens, "Should record resolved options")
	})

	t.Run("Error case", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.MockGeneratorThatFails()

		text, err := mockGen.GenerateText(context.Background(), "Test prompt")

		assert.Empty(t, text, "Should not return any text")
		assert.ErrorIs(t, err, generation.ErrQuotaExceeded)
		kind, ok := generation.KindOf(err)
		assert.True(t, ok)
		assert.Equal(t, generation.QuotaExceeded, kind)
	})

	t.Run("Custom function", func(t *testing.T) {
		t.Parallel()

		customErr := errors.New("custom error")
		mockGen := &mocks.MockGenerator{
			GenerateTextFn: func(ctx context.Context, prompt string, opts ...generation.Option) (string, error) {
				if prompt == "fail" {
					return "", customErr
				}
				return "echo: " + prompt, nil
			},
		}

		text, err := mockGen.GenerateText(context.Background(), "hi")
		assert.NoError(t, err)
		assert.Equal(t, "echo: hi", text)

		_, err = mockGen.GenerateText(context.Background(), "fail")
		assert.Equal(t, customErr, err)
		assert.Equal(t, 2, mockGen.CallCount())
	})

	t.Run("No calls", func(t *testing.T) {
		t.Parallel()

		mockGen := &mocks.MockGenerator{}
		assert.Equal(t, 0, mockGen.CallCount())
		assert.Equal(t, "", mockGen.LastPrompt())
		assert.Equal(t, generation.Request{}, mockGen.LastRequest())
	})
}

func TestMockTransport(t *testing.T) {
	t.Parallel()

	transport := &mocks.MockTransport{Text: "ok"}
	req := generation.Request{Prompt: "p", MaxTokens: 5, Temperature: 0.1}

	text, err := transport.Invoke(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 1, transport.CallCount())
	assert.Equal(t, req, transport.LastRequest())
}
