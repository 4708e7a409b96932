// Package inventory loads kobe inventories from YAML files.
//
//	vars:
//	  ansible_connection: ssh
//	hosts:
//	  - name: vagrant
//	    ip: 192.168.33.17
//	    user: vagrant
//	    private_key_file: .vagrant/private_key
//	    deprecation_warnings: False   # unknown keys become host vars
//	groups:
//	  - name: web
//	    hosts: [vagrant]
package inventory

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/AlexanderGrooff/kobe-client/pkg/common"
	"github.com/AlexanderGrooff/kobe-client/pkg/kobe"
	"github.com/AlexanderGrooff/kobe-client/pkg/source"
	"golang.org/x/crypto/ssh"
	"gopkg.in/yaml.v3"
)

const defaultSSHPort = 22

// stringMap keeps scalar values verbatim, so `False` stays "False".
type stringMap map[string]string

func (m *stringMap) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out := make(stringMap, len(raw))
	for k, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: var %q must be a scalar", node.Line, k)
		}
		out[k] = node.Value
	}
	*m = out
	return nil
}

type fileHost struct {
	Name           string            `yaml:"name"`
	IP             string            `yaml:"ip"`
	Port           int32             `yaml:"port"`
	User           string            `yaml:"user"`
	Password       string            `yaml:"password"`
	PrivateKey     string            `yaml:"private_key"`
	PrivateKeyFile string            `yaml:"private_key_file"`
	Proxy          *fileProxy        `yaml:"proxy"`
	Vars           stringMap         `yaml:"vars"`
}

type fileProxy struct {
	Enable   bool   `yaml:"enable"`
	IP       string `yaml:"ip"`
	Port     int32  `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

func (p *fileProxy) config() *kobe.ProxyConfig {
	if p == nil {
		return nil
	}
	return &kobe.ProxyConfig{
		Enable:   p.Enable,
		Ip:       p.IP,
		Port:     p.Port,
		User:     p.User,
		Password: p.Password,
	}
}

var knownHostFields = map[string]bool{
	"name":             true,
	"ip":               true,
	"port":             true,
	"user":             true,
	"password":         true,
	"private_key":      true,
	"private_key_file": true,
	"proxy":            true,
	"vars":             true,
}

// UnmarshalYAML puts every unknown scalar key of a host into its vars.
func (h *fileHost) UnmarshalYAML(value *yaml.Node) error {
	type plain fileHost
	if err := value.Decode((*plain)(h)); err != nil {
		return err
	}

	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if h.Vars == nil {
		h.Vars = make(stringMap)
	}
	for key, node := range raw {
		if knownHostFields[key] || node.Kind != yaml.ScalarNode {
			continue
		}
		h.Vars[key] = node.Value
	}
	return nil
}

type fileGroup struct {
	Name     string    `yaml:"name"`
	Hosts    []string  `yaml:"hosts"`
	Children []string  `yaml:"children"`
	Vars     stringMap `yaml:"vars"`
}

type file struct {
	Vars   stringMap   `yaml:"vars"`
	Hosts  []fileHost  `yaml:"hosts"`
	Groups []fileGroup `yaml:"groups"`
}

// Load reads the inventory at path. Private key files are resolved relative
// to the inventory file and must parse as SSH private keys.
func Load(loader *source.Loader, path string) (*kobe.Inventory, error) {
	text, err := loader.ReadText(path)
	if err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal([]byte(text), &f); err != nil {
		return nil, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}

	keyLoader := &source.Loader{Fs: loader.Fs, BaseDir: filepath.Dir(loader.Resolve(path))}

	inv := &kobe.Inventory{
		Hosts:  make([]*kobe.Host, 0, len(f.Hosts)),
		Groups: make([]*kobe.Group, 0, len(f.Groups)),
		Vars:   map[string]string(f.Vars),
	}
	if inv.Vars == nil {
		inv.Vars = map[string]string{}
	}

	for i, fh := range f.Hosts {
		host, err := buildHost(keyLoader, fh)
		if err != nil {
			return nil, fmt.Errorf("inventory %s: host %d: %w", path, i, err)
		}
		inv.Hosts = append(inv.Hosts, host)
	}

	for _, fg := range f.Groups {
		if fg.Name == "" {
			return nil, fmt.Errorf("inventory %s: group without name", path)
		}
		vars := map[string]string(fg.Vars)
		if vars == nil {
			vars = map[string]string{}
		}
		inv.Groups = append(inv.Groups, &kobe.Group{
			Name:     fg.Name,
			Hosts:    fg.Hosts,
			Children: fg.Children,
			Vars:     vars,
		})
	}

	common.LogDebug("Loaded inventory", map[string]interface{}{
		"path":   path,
		"hosts":  len(inv.Hosts),
		"groups": len(inv.Groups),
	})
	return inv, nil
}

func buildHost(keyLoader *source.Loader, fh fileHost) (*kobe.Host, error) {
	if fh.IP == "" {
		return nil, fmt.Errorf("ip is required")
	}
	host := &kobe.Host{
		Ip:          fh.IP,
		Name:        fh.Name,
		Port:        fh.Port,
		User:        fh.User,
		Password:    fh.Password,
		PrivateKey:  fh.PrivateKey,
		ProxyConfig: fh.Proxy.config(),
		Vars:        map[string]string(fh.Vars),
	}
	if host.Name == "" {
		host.Name = fh.IP
	}
	if host.Port == 0 {
		host.Port = defaultSSHPort
	}

	if fh.PrivateKeyFile != "" {
		if fh.PrivateKey != "" {
			return nil, fmt.Errorf("host %s: private_key and private_key_file are mutually exclusive", host.Name)
		}
		key, err := keyLoader.ReadText(fh.PrivateKeyFile)
		if err != nil {
			return nil, err
		}
		host.PrivateKey = key
	}
	if host.PrivateKey != "" {
		if err := CheckPrivateKey(host.PrivateKey); err != nil {
			return nil, fmt.Errorf("host %s: %w", host.Name, err)
		}
	}
	return host, nil
}

// CheckPrivateKey reports whether key is a PEM encoded SSH private key.
// Encrypted keys are accepted; the service holds the passphrase.
func CheckPrivateKey(key string) error {
	_, err := ssh.ParsePrivateKey([]byte(key))
	if err == nil {
		return nil
	}
	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) {
		return nil
	}
	return fmt.Errorf("invalid private key: %w", err)
}

// MergeVars sets inventory level vars, overwriting existing keys.
func MergeVars(inv *kobe.Inventory, vars map[string]string) {
	if len(vars) == 0 {
		return
	}
	if inv.Vars == nil {
		inv.Vars = make(map[string]string, len(vars))
	}
	for k, v := range vars {
		inv.Vars[k] = v
	}
}
