// Package request builds KobeApi requests from explicit values. Nothing here
// reads files or fills in defaults.
package request

import "github.com/AlexanderGrooff/kobe-client/pkg/kobe"

// NewHost returns a host reachable over SSH at ip:port.
func NewHost(name, ip string, port int32, user string) *kobe.Host {
	return &kobe.Host{
		Name: name,
		Ip:   ip,
		Port: port,
		User: user,
		Vars: map[string]string{},
	}
}

// NewInventory groups hosts under shared vars. A nil vars map is kept nil.
func NewInventory(hosts []*kobe.Host, groups []*kobe.Group, vars map[string]string) *kobe.Inventory {
	return &kobe.Inventory{
		Hosts:  hosts,
		Groups: groups,
		Vars:   vars,
	}
}

// BuildAdhoc assembles an ad-hoc request running module with param on the
// hosts matched by pattern.
func BuildAdhoc(inv *kobe.Inventory, pattern, module, param string) *kobe.RunAdhocRequest {
	return &kobe.RunAdhocRequest{
		Inventory: inv,
		Pattern:   pattern,
		Module:    module,
		Param:     param,
	}
}

// BuildPlaybook assembles a playbook request. content is the playbook body.
func BuildPlaybook(inv *kobe.Inventory, project, playbook, tag, content string) *kobe.RunPlaybookRequest {
	return &kobe.RunPlaybookRequest{
		Inventory: inv,
		Project:   project,
		Playbook:  playbook,
		Tag:       tag,
		Content:   content,
	}
}
