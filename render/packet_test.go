package render

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/network"
	"github.com/wfunc/hangman/words"
)

// MockSender collects sent packets.
type MockSender struct {
	Packets []*network.Packet
	Err     error
}

func (m *MockSender) Send(msgID uint16, data []byte) error {
	m.Packets = append(m.Packets, &network.Packet{MsgID: msgID, Data: data, Length: uint16(len(data))})
	return m.Err
}

// fanout forwards notifications to several presenters.
type fanout []game.Presenter

func (f fanout) Reset(s game.Setup) {
	for _, p := range f {
		p.Reset(s)
	}
}

func (f fanout) RevealLetter(l rune, slots []int) {
	for _, p := range f {
		p.RevealLetter(l, slots)
	}
}

func (f fanout) MarkKey(l rune, m game.Mark) {
	for _, p := range f {
		p.MarkKey(l, m)
	}
}

func (f fanout) ShowPart(part game.Part) {
	for _, p := range f {
		p.ShowPart(part)
	}
}

func (f fanout) UpdateStatus(misses int, guessed []rune) {
	for _, p := range f {
		p.UpdateStatus(misses, guessed)
	}
}

func (f fanout) ShowMessage(text string, style game.Style) {
	for _, p := range f {
		p.ShowMessage(text, style)
	}
}

func TestPacketPresenter_ReplayMatchesBoard(t *testing.T) {
	catalog, err := words.NewCatalog([]words.Entry{{Word: "ICE CREAM", Hint: "cold"}})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	sender := &MockSender{}
	direct := NewBoard()
	c := game.NewController(catalog, firstSource{}, fanout{direct, NewPacketPresenter(sender)})

	c.StartRound()
	for _, l := range "EZQC" {
		c.Guess(l)
	}
	c.Reveal()

	replayed := NewBoard()
	for _, packet := range sender.Packets {
		if err := Decode(packet, replayed); err != nil {
			t.Fatalf("Decode(%d) failed: %v", packet.MsgID, err)
		}
	}

	if !reflect.DeepEqual(direct, replayed) {
		t.Errorf("Replayed board differs from direct board:\ndirect:   %+v\nreplayed: %+v", direct, replayed)
	}
	if sender.Packets[0].MsgID != network.MsgTypeRoundReset {
		t.Errorf("Expected first packet to be a round reset, got %d", sender.Packets[0].MsgID)
	}
}

func TestPacketPresenter_HiddenSlotsDoNotLeak(t *testing.T) {
	sender := &MockSender{}
	p := NewPacketPresenter(sender)
	p.Reset(game.Setup{Slots: []game.Slot{{}, {Letter: ' ', Revealed: true}, {}}, MaxMisses: 6})

	want := `{"slots":[""," ",""],"hint":"","max_misses":6}`
	if got := string(sender.Packets[0].Data); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestPacketPresenter_SendErrorIsSwallowed(t *testing.T) {
	sender := &MockSender{Err: errors.New("closed")}
	p := NewPacketPresenter(sender)
	p.ShowMessage("hi", game.StyleNeutral)

	if len(sender.Packets) != 1 {
		t.Errorf("Expected one send attempt, got %d", len(sender.Packets))
	}
}

func TestDecode_Errors(t *testing.T) {
	board := NewBoard()

	if err := Decode(&network.Packet{MsgID: 9999}, board); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("Expected ErrUnknownMessage, got %v", err)
	}
	if err := Decode(&network.Packet{MsgID: network.MsgTypeKeyMarked, Data: []byte(`{"letter":"AB"}`)}, board); err == nil {
		t.Error("Expected error for a multi-character letter")
	}
	if err := Decode(&network.Packet{MsgID: network.MsgTypeStatusUpdated, Data: []byte(`not json`)}, board); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestDecode_RejectsBadMaxMisses(t *testing.T) {
	for _, data := range []string{
		`{"slots":["",""],"max_misses":-1}`,
		`{"slots":["",""],"max_misses":0}`,
		`{"slots":["",""],"max_misses":1000000000000}`,
	} {
		board := NewBoard()
		err := Decode(&network.Packet{MsgID: network.MsgTypeRoundReset, Data: []byte(data)}, board)
		if !errors.Is(err, ErrInvalidPayload) {
			t.Errorf("Expected ErrInvalidPayload for %s, got %v", data, err)
		}
		if len(board.Slots) != 0 {
			t.Errorf("Expected board untouched for %s, got %d slots", data, len(board.Slots))
		}
	}

	board := NewBoard()
	data := `{"slots":["",""],"hint":"Pet","max_misses":6}`
	if err := Decode(&network.Packet{MsgID: network.MsgTypeRoundReset, Data: []byte(data)}, board); err != nil {
		t.Fatalf("Expected valid reset to decode, got %v", err)
	}
	if len(board.Slots) != 2 || board.MaxMisses != game.MaxMisses {
		t.Errorf("Expected 2 slots and %d max misses, got %d and %d", game.MaxMisses, len(board.Slots), board.MaxMisses)
	}
}

func TestDecodeError(t *testing.T) {
	text, err := DecodeError(&network.Packet{MsgID: network.MsgTypeError, Data: []byte(`{"message":"no round"}`)})
	if err != nil || text != "no round" {
		t.Errorf("Expected \"no round\", got %q (%v)", text, err)
	}

	if _, err := DecodeError(&network.Packet{MsgID: network.MsgTypeError, Data: []byte(`{`)}); err == nil {
		t.Error("Expected error for malformed error payload")
	}
	if _, err := DecodeError(&network.Packet{MsgID: network.MsgTypeStatusUpdated}); !errors.Is(err, ErrUnknownMessage) {
		t.Errorf("Expected ErrUnknownMessage for a non-error packet, got %v", err)
	}
}
