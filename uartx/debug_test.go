//go:build uartxdebug

package uartx

import "testing"

func TestDebugCounters(t *testing.T) {
	u, m := newTestUART(t, KindMini)
	m.StallTx(2)
	m.ReceiveString("ab\x7fcdefghij")

	if err := u.WriteByte('x'); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 4)
	u.ReadLine(buf)

	st := u.DebugStats()
	if st.TxWaits != 2 || st.Erases != 1 || st.LineOverflows != 1 {
		t.Fatalf("stats %+v", st)
	}
	u.DebugReset()
	if u.DebugStats() != (Stats{}) {
		t.Fatal("DebugReset left counters")
	}
}
