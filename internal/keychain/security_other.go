//go:build !darwin

package keychain

import "errors"

var errNoSecurityTool = errors.New("keychain: the security tool exists only on macOS")

// securityBackend is never constructed off macOS; NewManager uses keyring there.
type securityBackend struct{}

func newSecurityBackend(string) (*securityBackend, error) { return nil, errNoSecurityTool }

func (*securityBackend) Set(string, string) error { return errNoSecurityTool }
func (*securityBackend) Get(string) (string, error) { return "", errNoSecurityTool }
func (*securityBackend) Delete(string) error { return errNoSecurityTool }
