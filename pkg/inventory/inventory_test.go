package inventory

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"testing"

	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/AlexanderGrooff/kobe-client/pkg/source"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
	"google.golang.org/protobuf/testing/protocmp"
)

func generateKey(t *testing.T) string {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	block, err := ssh.MarshalPrivateKey(priv, "")
	require.NoError(t, err)
	return string(pem.EncodeToMemory(block))
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	key := generateKey(t)
	require.NoError(t, afero.WriteFile(fs, "/infra/keys/vagrant", []byte(key), 0600))
	require.NoError(t, afero.WriteFile(fs, "/infra/inventory.yaml", []byte(`
vars:
  deprecation_warnings: False
hosts:
  - name: vagrant
    ip: 192.168.33.17
    user: vagrant
    private_key_file: keys/vagrant
    ansible_connection: ssh
  - ip: 10.0.0.5
    port: 2222
    user: op
    password: secret
    vars:
      role: db
    proxy:
      enable: true
      ip: 10.0.0.1
      port: 22
      user: jump
groups:
  - name: web
    hosts: [vagrant]
`), 0644))

	inv, err := Load(&source.Loader{Fs: fs}, "/infra/inventory.yaml")
	require.NoError(t, err)

	want := &kobe.Inventory{
		Hosts: []*kobe.Host{
			{
				Ip:         "192.168.33.17",
				Name:       "vagrant",
				Port:       22,
				User:       "vagrant",
				PrivateKey: key,
				Vars:       map[string]string{"ansible_connection": "ssh"},
			},
			{
				Ip:       "10.0.0.5",
				Name:     "10.0.0.5",
				Port:     2222,
				User:     "op",
				Password: "secret",
				ProxyConfig: &kobe.ProxyConfig{
					Enable: true,
					Ip:     "10.0.0.1",
					Port:   22,
					User:   "jump",
				},
				Vars: map[string]string{"role": "db"},
			},
		},
		Groups: []*kobe.Group{
			{Name: "web", Hosts: []string{"vagrant"}, Vars: map[string]string{}},
		},
		Vars: map[string]string{"deprecation_warnings": "False"},
	}
	if diff := cmp.Diff(want, inv, protocmp.Transform()); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		files   map[string]string
		isIOErr bool
	}{
		{
			name:    "missing private key file",
			content: "hosts:\n  - ip: 10.0.0.5\n    private_key_file: nope\n",
			isIOErr: true,
		},
		{
			name:    "garbage private key",
			content: "hosts:\n  - ip: 10.0.0.5\n    private_key_file: key\n",
			files:   map[string]string{"/inv/key": "not a key"},
		},
		{
			name:    "host without ip",
			content: "hosts:\n  - name: nameless\n",
		},
		{
			name:    "group without name",
			content: "groups:\n  - hosts: [a]\n",
		},
		{
			name:    "invalid yaml",
			content: "hosts: [\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "/inv/inventory.yaml", []byte(tt.content), 0644))
			for p, c := range tt.files {
				require.NoError(t, afero.WriteFile(fs, p, []byte(c), 0600))
			}
			_, err := Load(&source.Loader{Fs: fs}, "/inv/inventory.yaml")
			require.Error(t, err)
			var ioErr *source.IOError
			assert.Equal(t, tt.isIOErr, errors.As(err, &ioErr))
		})
	}
}

func TestLoadMissingInventory(t *testing.T) {
	_, err := Load(&source.Loader{Fs: afero.NewMemMapFs()}, "/nope.yaml")
	var ioErr *source.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestMergeVars(t *testing.T) {
	inv := &kobe.Inventory{}
	MergeVars(inv, map[string]string{"a": "1"})
	MergeVars(inv, map[string]string{"a": "2", "b": "3"})
	MergeVars(inv, nil)
	assert.Equal(t, map[string]string{"a": "2", "b": "3"}, inv.Vars)
}
