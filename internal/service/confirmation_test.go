package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"sesamebooking/internal/booking"
	"sesamebooking/internal/service"
)

func TestFallbackMessage(t *testing.T) {
	// 2024-03-02 is a Saturday.
	slot := booking.BookedSlot{Date: "2024-03-02", TimeID: "10:30", ComputerID: booking.ComputerB}

	msg := service.FallbackMessage(slot)

	assert.Equal(t, "您好，補課時間已安排於 3月2日（週六） 10:30 （電腦B），請您留意時間，若臨時有異動請提前告知，謝謝配合。", msg)
}

func TestFallbackMessageBadDate(t *testing.T) {
	slot := booking.BookedSlot{Date: "garbage", TimeID: "10:30", ComputerID: booking.ComputerA}

	// Still returns a usable string; never panics or errors.
	msg := service.FallbackMessage(slot)
	assert.Contains(t, msg, "garbage")
	assert.Contains(t, msg, "10:30")
}

func TestTemplateGeneratorIsDeterministic(t *testing.T) {
	gen := service.TemplateGenerator{}
	slot := booking.BookedSlot{Date: "2024-03-04", TimeID: "14:00", ComputerID: booking.ComputerC}

	first := gen.ConfirmationMessage(context.Background(), slot)
	second := gen.ConfirmationMessage(context.Background(), slot)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "週一")
	assert.Contains(t, first, "電腦C")
}

func TestGeminiGeneratorWithoutKeyFallsBack(t *testing.T) {
	gen := service.NewGeminiGenerator("", zap.NewNop())
	slot := booking.BookedSlot{Date: "2024-03-04", TimeID: "14:00", ComputerID: booking.ComputerA}

	assert.Equal(t, service.FallbackMessage(slot), gen.ConfirmationMessage(context.Background(), slot))
}
