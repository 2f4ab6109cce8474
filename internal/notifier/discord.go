package notifier

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
	"github.com/satram-seva/registration-api/internal/config"
	"github.com/satram-seva/registration-api/internal/models"
)

type Notifier interface {
	NotifyRegistration(reg models.Registration) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" || cfg.DiscordNotificationsChannelID == "" {
		return nil, fmt.Errorf("discord notifier not configured")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordNotificationsChannelID,
	}, nil
}

func (n *DiscordNotifier) NotifyRegistration(reg models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}

	stay := "not required"
	if reg.Accommodation.Required {
		stay = fmt.Sprintf("%d person(s), %s to %s",
			len(reg.Accommodation.MemberIDs),
			reg.Accommodation.CheckInDate,
			reg.Accommodation.CheckOutDate,
		)
	}

	food := "not required"
	if reg.Food.TakeawayRequired {
		food = fmt.Sprintf("%d packet(s) on %s", reg.Food.PacketCount, reg.Food.PickupDate)
	}

	message := fmt.Sprintf("🪔 **New Registration**\n**Name:** %s (%s)\n**City:** %s\n**Dates:** %s\n**Guests:** %d\n**Stay:** %s\n**Food:** %s",
		reg.Primary.FullName,
		reg.Primary.Mobile,
		reg.Primary.City,
		strings.Join(reg.AttendingDates, ", "),
		len(reg.Guests),
		stay,
		food,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Error().Err(err).Msg("failed to send discord message")
		return err
	}

	return nil
}
