package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mezonai/certledger/events"
	"github.com/mezonai/certledger/jsonx"
	"github.com/mezonai/certledger/ledger"
)

const menuTitle = "=== Academic Certificates Blockchain with University Authorization ==="

var menuOptions = []string{
	"Add certificate record (University only)",
	"Mine block (validate records)",
	"Show blockchain",
	"Validate blockchain",
	"Verify certificate by student name (Employer Access)",
	"Exit",
}

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	okColor    = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
)

// Menu is the console front-end of a Chain. Every option maps to exactly
// one chain operation. Mining results and discarded batches are reported
// from the events the chain publishes on bus.
type Menu struct {
	chain *ledger.Chain
	bus   *events.EventBus
	feed  chan events.LedgerEvent
	in    *bufio.Reader
	out   io.Writer
}

// NewMenu expects bus to be the one chain publishes on. A nil bus
// silences event-driven output.
func NewMenu(chain *ledger.Chain, bus *events.EventBus, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		chain: chain,
		bus:   bus,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run loops until the user picks Exit or input ends.
func (m *Menu) Run() error {
	if m.bus != nil {
		id, ch := m.bus.Subscribe()
		m.feed = ch
		defer m.bus.Unsubscribe(id)
	}

	for {
		m.printMenu()
		choice, err := m.prompt("Choose option: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = m.addCertificate()
		case "2":
			err = m.mineBlock()
		case "3":
			err = m.showChain()
		case "4":
			fmt.Fprintln(m.out, "Blockchain valid?", m.chain.IsValid())
		case "5":
			err = m.verifyStudent()
		case "6":
			return nil
		default:
			warnColor.Fprintln(m.out, "Invalid choice, try again.")
		}
		m.printEvents()
		if err != nil {
			return endOfInput(err)
		}
	}
}

// printEvents reports what the chain published since the last call. The
// chain publishes before its operations return, so nothing is waited for.
func (m *Menu) printEvents() {
	for {
		select {
		case ev, ok := <-m.feed:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *events.BlockMined:
				okColor.Fprintf(m.out, "✅ Block mined: %s\n", e.BlockHash())
			case *events.PendingDiscarded:
				if e.Discarded() > 0 {
					warnColor.Fprintf(m.out, "⚠️ %d pending certificate(s) discarded\n", e.Discarded())
				}
			}
		default:
			return
		}
	}
}

func endOfInput(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	titleColor.Fprintln(m.out, menuTitle)
	for i, opt := range menuOptions {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, opt)
	}
}

// prompt prints label and returns the next trimmed input line. A final
// line without a newline is still returned; io.EOF only comes back once
// nothing is left.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) addCertificate() error {
	uid, err := m.prompt("Enter University ID: ")
	if err != nil {
		return err
	}
	student, err := m.prompt("Student Name: ")
	if err != nil {
		return err
	}
	course, err := m.prompt("Course: ")
	if err != nil {
		return err
	}
	year, err := m.prompt("Year: ")
	if err != nil {
		return err
	}

	if err := m.chain.AddCertificate(uid, student, course, year); err != nil {
		errColor.Fprintln(m.out, "⛔ Unauthorized attempt! Only registered universities can add certificates.")
		return nil
	}
	institution, _ := m.chain.Issuers().Name(uid)
	okColor.Fprintf(m.out, "✅ Certificate added by %s\n", institution)
	return nil
}

func (m *Menu) mineBlock() error {
	uid, err := m.prompt("Enter University ID for validation: ")
	if err != nil {
		return err
	}

	if _, err := m.chain.MinePending(uid); err != nil {
		errColor.Fprintln(m.out, "⛔ Unauthorized University ID. Cannot mine certificates.")
		m.printEvents()
		return nil
	}
	m.printEvents()
	institution, _ := m.chain.Issuers().Name(uid)
	okColor.Fprintf(m.out, "🎓 Block validated by %s\n", institution)
	return nil
}

func (m *Menu) showChain() error {
	for _, view := range m.chain.Render() {
		data, err := jsonx.MarshalIndent(view, "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintln(m.out, string(data))
		fmt.Fprintln(m.out, strings.Repeat("-", 40))
	}
	fmt.Fprintf(m.out, "Blocks: %d | Pending: %d | Difficulty: %d | Total work: %s\n",
		m.chain.Len(), len(m.chain.Pending()), m.chain.Difficulty(), m.chain.TotalWork().Dec())
	return nil
}

func (m *Menu) verifyStudent() error {
	student, err := m.prompt("Enter Student Name to verify: ")
	if err != nil {
		return err
	}

	records := m.chain.LookupByStudent(student)
	if len(records) == 0 {
		warnColor.Fprintf(m.out, "\n⚠️ No certificate found for %s. May be fake or not issued yet.\n", student)
		return nil
	}

	okColor.Fprintf(m.out, "\n🎓 Certificates found for %s:\n", student)
	for _, rec := range records {
		data, err := jsonx.MarshalIndent(rec, "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintln(m.out, string(data))
	}
	return nil
}
