// uartx/uartx_blocking.go

package uartx

import "context"

// pollDone reports whether ctx is done, without blocking.
func pollDone(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// WaitReadableContext polls until a byte is pending or ctx is done.
func (u *UART) WaitReadableContext(ctx context.Context) error {
	for !u.RxReady() {
		if err := pollDone(ctx); err != nil {
			return err
		}
		u.dbgIdle()
		relax()
	}
	return nil
}

// RecvSomeContext waits for at least one byte, then reads up to len(p).
func (u *UART) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := u.WaitReadableContext(ctx); err != nil {
		return 0, err
	}
	return u.Read(p)
}

// RecvByteContext waits for a single byte or until ctx is done.
func (u *UART) RecvByteContext(ctx context.Context) (byte, error) {
	if err := u.WaitReadableContext(ctx); err != nil {
		return 0, err
	}
	return u.Get(), nil
}
