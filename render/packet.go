package render

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/network"
)

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrInvalidPayload = errors.New("invalid payload")
)

// Sender delivers a framed message. session.Session implements it.
type Sender interface {
	Send(msgID uint16, data []byte) error
}

// PacketPresenter encodes notifications as network packets. Send failures
// are logged; the controller never sees them.
type PacketPresenter struct {
	sender Sender
}

func NewPacketPresenter(sender Sender) *PacketPresenter {
	return &PacketPresenter{sender: sender}
}

func (p *PacketPresenter) send(msgID uint16, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorf("Error marshalling message %d: %v", msgID, err)
		return
	}
	if err := p.sender.Send(msgID, data); err != nil {
		logger.Log.Warnf("Error sending message %d: %v", msgID, err)
	}
}

func (p *PacketPresenter) Reset(setup game.Setup) {
	slots := make([]string, len(setup.Slots))
	for i, slot := range setup.Slots {
		if slot.Revealed {
			slots[i] = string(slot.Letter)
		}
	}
	p.send(network.MsgTypeRoundReset, network.RoundResetPayload{
		Slots:     slots,
		Hint:      setup.Hint,
		MaxMisses: setup.MaxMisses,
	})
}

func (p *PacketPresenter) RevealLetter(letter rune, slots []int) {
	p.send(network.MsgTypeLetterRevealed, network.LetterRevealedPayload{Letter: string(letter), Slots: slots})
}

func (p *PacketPresenter) MarkKey(letter rune, mark game.Mark) {
	p.send(network.MsgTypeKeyMarked, network.KeyMarkedPayload{Letter: string(letter), Mark: string(mark)})
}

func (p *PacketPresenter) ShowPart(part game.Part) {
	p.send(network.MsgTypePartShown, network.PartShownPayload{Index: part.Index, Name: part.Name})
}

func (p *PacketPresenter) UpdateStatus(misses int, guessed []rune) {
	letters := make([]string, len(guessed))
	for i, l := range guessed {
		letters[i] = string(l)
	}
	p.send(network.MsgTypeStatusUpdated, network.StatusUpdatedPayload{Misses: misses, Guessed: letters})
}

func (p *PacketPresenter) ShowMessage(text string, style game.Style) {
	p.send(network.MsgTypeMessageShown, network.MessageShownPayload{Text: text, Style: string(style)})
}

// Decode replays a server notification into presenter.
func Decode(packet *network.Packet, presenter game.Presenter) error {
	switch packet.MsgID {
	case network.MsgTypeRoundReset:
		var msg network.RoundResetPayload
		if err := json.Unmarshal(packet.Data, &msg); err != nil {
			return fmt.Errorf("decode round reset: %w", err)
		}
		// the figure has exactly MaxMisses parts
		if msg.MaxMisses != game.MaxMisses {
			return fmt.Errorf("%w: max_misses %d", ErrInvalidPayload, msg.MaxMisses)
		}
		slots := make([]game.Slot, len(msg.Slots))
		for i, s := range msg.Slots {
			if s != "" {
				slots[i] = game.Slot{Letter: []rune(s)[0], Revealed: true}
			}
		}
		presenter.Reset(game.Setup{Slots: slots, Hint: msg.Hint, MaxMisses: msg.MaxMisses})

	case network.MsgTypeLetterRevealed:
		var msg network.LetterRevealedPayload
		if err := json.Unmarshal(packet.Data, &msg); err != nil {
			return fmt.Errorf("decode letter revealed: %w", err)
		}
		letter, err := letterOf(msg.Letter)
		if err != nil {
			return err
		}
		presenter.RevealLetter(letter, msg.Slots)

	case network.MsgTypeKeyMarked:
		var msg network.KeyMarkedPayload
		if err := json.Unmarshal(packet.Data, &msg); err != nil {
			return fmt.Errorf("decode key marked: %w", err)
		}
		letter, err := letterOf(msg.Letter)
		if err != nil {
			return err
		}
		presenter.MarkKey(letter, game.Mark(msg.Mark))

	case network.MsgTypePartShown:
		var msg network.PartShownPayload
		if err := json.Unmarshal(packet.Data, &msg); err != nil {
			return fmt.Errorf("decode part shown: %w", err)
		}
		presenter.ShowPart(game.Part{Index: msg.Index, Name: msg.Name})

	case network.MsgTypeStatusUpdated:
		var msg network.StatusUpdatedPayload
		if err := json.Unmarshal(packet.Data, &msg); err != nil {
			return fmt.Errorf("decode status: %w", err)
		}
		guessed := make([]rune, 0, len(msg.Guessed))
		for _, s := range msg.Guessed {
			letter, err := letterOf(s)
			if err != nil {
				return err
			}
			guessed = append(guessed, letter)
		}
		presenter.UpdateStatus(msg.Misses, guessed)

	case network.MsgTypeMessageShown:
		var msg network.MessageShownPayload
		if err := json.Unmarshal(packet.Data, &msg); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}
		presenter.ShowMessage(msg.Text, game.Style(msg.Style))

	default:
		return fmt.Errorf("%w: %d", ErrUnknownMessage, packet.MsgID)
	}
	return nil
}

// DecodeError returns the text of an Error packet.
func DecodeError(packet *network.Packet) (string, error) {
	if packet.MsgID != network.MsgTypeError {
		return "", fmt.Errorf("%w: %d", ErrUnknownMessage, packet.MsgID)
	}
	var msg network.ErrorPayload
	if err := json.Unmarshal(packet.Data, &msg); err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	return msg.Message, nil
}

func letterOf(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: letter %q", ErrInvalidPayload, s)
	}
	return r[0], nil
}
