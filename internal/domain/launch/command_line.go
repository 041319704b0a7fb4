// Where: internal/domain/launch/command_line.go
// What: Java launch command construction.
// Why: The Dockerfile entrypoint must be reproducible from parameters alone.
package launch

import "strings"

// CommandLine returns the JVM arguments in their fixed order:
// system properties, -Xmx, optional -Xms, extra JVM args, then -jar <artifact>.
// Values are passed through without validation.
func CommandLine(p Parameters) []string {
	args := make([]string, 0, p.systemProperties.Len()+len(p.jvmArgs)+4)
	for _, prop := range p.systemProperties.entries {
		if prop.Value != nil {
			args = append(args, "-D"+prop.Name+`="`+*prop.Value+`"`)
			continue
		}
		args = append(args, "-D"+prop.Name)
	}
	args = append(args, "-Xmx"+p.maxHeapSize)
	if p.minHeapSize != "" {
		args = append(args, "-Xms"+p.minHeapSize)
	}
	args = append(args, p.jvmArgs...)
	args = append(args, "-jar", ArtifactPath)
	return args
}

// Argv returns the full in-image process arguments, executable first.
func Argv(p Parameters) []string {
	return append([]string{p.executable}, CommandLine(p)...)
}

var execFormEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ExecForm renders args as a comma-joined list of double-quoted strings,
// suitable for the inside of a Dockerfile ENTRYPOINT/CMD JSON array.
func ExecForm(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, `"`+execFormEscaper.Replace(arg)+`"`)
	}
	return strings.Join(quoted, ",")
}
