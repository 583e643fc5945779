package cmd

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/matteocalo/photodesk/internal/core/events"
	"github.com/matteocalo/photodesk/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event bus commands",
	Long:  `Inspect the in-process event bus: publish a synthetic event through the activity logger.`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [event-type]",
	Short: "Publish a test event",
	Long:  `Publish a test event to a bus wired with the activity logger, the same subscriber the server uses.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		publishTestEvent(args[0])
	},
}

var (
	eventData  string
	eventJobID int64
)

func publishTestEvent(eventType string) {
	lg := logger.LoggerWrapper()

	bus := events.NewEventBus(lg)
	activity := events.NewActivityLogger(lg)
	activity.RegisterEventHandlers(bus)
	// Unknown types still get echoed so the command is useful for new events.
	bus.Subscribe(eventType, func(ctx context.Context, event events.Event) error {
		lg.Info("test handler received event",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"payload", event.Payload())
		return nil
	})

	testEvent := events.BaseEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"job_id":  eventJobID,
			"message": eventData,
			"source":  "cli-command",
		},
	}

	lg.Info("publishing test event", "event_type", eventType, "event_id", testEvent.ID)

	if err := bus.Publish(context.Background(), testEvent); err != nil {
		lg.Error("failed to publish event", "error", err)
		return
	}

	bus.Wait()
	lg.Info("test event published successfully")
}

func init() {
	publishEventCmd.Flags().StringVar(&eventData, "data", "test message", "Event data message")
	publishEventCmd.Flags().Int64Var(&eventJobID, "job-id", 0, "Photo job id carried in the payload")

	eventCmd.AddCommand(publishEventCmd)
}
