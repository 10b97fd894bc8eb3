package dev

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ImSingee/go-ex/mr"

	"github.com/ImSingee/shopify-cli/internal/config"
	"github.com/ImSingee/shopify-cli/internal/lib/shells"
)

const DefaultTunnelTimeout = 30 * time.Second

var tunnelURLPattern = regexp.MustCompile(`https://[^\s"'<>]+`)

// CommandTunnelPlugin runs a configured command and takes the first https
// URL it prints as the tunnel URL
type CommandTunnelPlugin struct {
	PluginName string
	Command    string // {port} and {url} are replaced with the local port and http://localhost:<port>
	Timeout    time.Duration
}

// TunnelPluginsFromConfig turns configured tunnel commands into plugins
func TunnelPluginsFromConfig(plugins []config.TunnelPlugin) []Plugin {
	return mr.Map(plugins, func(p config.TunnelPlugin, _ int) Plugin {
		return &CommandTunnelPlugin{PluginName: p.Name, Command: p.Command}
	})
}

func (p *CommandTunnelPlugin) Name() string {
	return p.PluginName
}

func (p *CommandTunnelPlugin) Start(ctx context.Context, port int) (string, error) {
	args, err := shells.Expand(p.Command, map[string]string{
		"port": strconv.Itoa(port),
		"url":  "http://localhost:" + strconv.Itoa(port),
	})
	if err != nil {
		return "", ee.Wrapf(err, "invalid command for tunnel plugin %s", p.PluginName)
	}
	if len(args) == 0 {
		return "", ee.Errorf("empty command for tunnel plugin %s", p.PluginName)
	}

	pr, pw := io.Pipe()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = pw
	cmd.Stderr = pw
	cmd.WaitDelay = time.Second

	slog.Debug("Running tunnel command", "plugin", p.PluginName, "command", shells.Join(args))
	if err := cmd.Start(); err != nil {
		return "", ee.Wrapf(err, "cannot run tunnel plugin %s", p.PluginName)
	}

	found := make(chan string, 1)
	exited := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(pr)
		sent := false
		for scanner.Scan() {
			line := scanner.Text()
			slog.Debug("Tunnel output", "plugin", p.PluginName, "line", line)

			if !sent {
				if u := tunnelURLPattern.FindString(line); u != "" {
					found <- u
					sent = true
				}
			}
		}
		_, _ = io.Copy(io.Discard, pr)
	}()

	go func() {
		err := cmd.Wait()
		_ = pw.Close()
		exited <- err
	}()

	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultTunnelTimeout
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case u := <-found:
		return u, nil
	case err := <-exited:
		// the URL may have been printed right before exiting
		select {
		case u := <-found:
			return "", ee.Errorf("tunnel plugin %s exited after providing %s", p.PluginName, u)
		default:
		}
		if err == nil {
			return "", ee.Errorf("tunnel plugin %s exited without providing a URL", p.PluginName)
		}
		return "", ee.Wrapf(err, "tunnel plugin %s exited without providing a URL", p.PluginName)
	case <-timer.C:
		_ = cmd.Process.Kill()
		return "", ee.Errorf("tunnel plugin %s did not provide a URL within %s", p.PluginName, timeout)
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
