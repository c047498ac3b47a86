package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/fctp/internal/cli"
	"github.com/katalvlaran/fctp/transport"
)

var textbookArgs = []string{"20,30", "25,25", "2,3,4,1", "0,0,0,0"}

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

var _ = Describe("solve", func() {
	Context("with the legacy positional arguments", func() {
		It("prints fitness, elapsed time and the used routes on one line", func() {
			args := append(append([]string{}, textbookArgs...), "10", "8", "0")
			code, out, _ := run(append(args, "--seed", "42")...)
			Expect(code).To(Equal(cli.ExitOK))

			fields := strings.Fields(out)
			Expect(fields).To(HaveLen(2 + 4*3))
			Expect(fields[0]).To(Equal("85"))
			Expect(fields[2:]).To(Equal([]string{
				"0", "0", "20", "40",
				"1", "0", "5", "20",
				"1", "1", "25", "25",
			}))
		})

		It("works behind the explicit subcommand", func() {
			args := append([]string{"solve"}, textbookArgs...)
			code, out, _ := run(append(args, "5", "4", "0", "--seed", "1")...)
			Expect(code).To(Equal(cli.ExitOK))
			Expect(strings.Fields(out)[0]).To(Equal("85"))
		})

		It("rejects a non-numeric token as malformed input", func() {
			code, out, errOut := run("20,x", "25,25", "2,3,4,1", "0,0,0,0", "10", "8", "0.1")
			Expect(code).To(Equal(cli.ExitMalformed))
			Expect(out).To(BeEmpty())
			Expect(errOut).To(ContainSubstring("supply"))
		})

		It("rejects a cost matrix of the wrong length", func() {
			code, _, _ := run("20,30", "25,25", "2,3,4", "0,0,0,0", "10", "8", "0.1")
			Expect(code).To(Equal(cli.ExitMalformed))
		})

		It("reports invalid run parameters distinctly", func() {
			args := append(append([]string{}, textbookArgs...), "10", "0", "0.1")
			code, _, errOut := run(args...)
			Expect(code).To(Equal(cli.ExitInvalidConfig))
			Expect(errOut).To(ContainSubstring("population"))
		})

		It("treats a negative mutation rate as a run parameter, not a flag", func() {
			args := append(append([]string{}, textbookArgs...), "10", "8", "-0.5")
			code, _, errOut := run(args...)
			Expect(code).To(Equal(cli.ExitInvalidConfig))
			Expect(errOut).To(ContainSubstring("mutation rate"))
			Expect(errOut).NotTo(ContainSubstring("shorthand"))
		})

		It("treats negative generations as a run parameter", func() {
			args := append(append([]string{}, textbookArgs...), "-3", "8", "0.1")
			code, _, _ := run(args...)
			Expect(code).To(Equal(cli.ExitInvalidConfig))
		})

		It("rejects a negative cost token as malformed input", func() {
			code, _, errOut := run("20,30", "25,25", "-2,3,4,1", "0,0,0,0", "10", "8", "0.1")
			Expect(code).To(Equal(cli.ExitMalformed))
			Expect(errOut).To(ContainSubstring("unit cost"))
		})

		It("still passes a negative value to the flag before it", func() {
			args := append(append([]string{}, textbookArgs...), "10", "8", "0")
			code, _, _ := run(append(args, "--seed", "-7")...)
			Expect(code).To(Equal(cli.ExitOK))
		})

		It("reports all-zero selection weights distinctly", func() {
			code, _, _ := run("0,0", "0,0", "2,3,4,1", "0,0,0,0", "3", "4", "0", "--seed", "1")
			Expect(code).To(Equal(cli.ExitInvalidWeight))
		})
	})

	Context("with flags", func() {
		It("requires either an instance or the positional arguments", func() {
			code, _, errOut := run("--generations", "3")
			Expect(code).To(Equal(cli.ExitUsage))
			Expect(errOut).To(ContainSubstring("--instance"))
		})

		It("rejects an unknown output format", func() {
			args := append(append([]string{}, textbookArgs...), "3", "4", "0")
			code, _, _ := run(append(args, "--output", "xml")...)
			Expect(code).To(Equal(cli.ExitInvalidConfig))
		})

		It("solves a YAML instance and emits JSON", func() {
			p, err := transport.NewProblem([]int{20, 30}, []int{25, 25},
				[][]float64{{2, 3}, {4, 1}}, [][]float64{{0, 0}, {0, 0}})
			Expect(err).NotTo(HaveOccurred())

			path := filepath.Join(GinkgoT().TempDir(), "textbook.yaml")
			f, err := os.Create(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(transport.WriteYAML(f, p)).To(Succeed())
			Expect(f.Close()).To(Succeed())

			code, out, _ := run("--instance", path, "--output", "json",
				"--generations", "5", "--population", "6", "--mutation-rate", "0", "--seed", "3")
			Expect(code).To(Equal(cli.ExitOK))

			var got struct {
				BestFitness float64           `json:"best_fitness"`
				Generations int               `json:"generations"`
				Seed        int64             `json:"seed"`
				Routes      []transport.Route `json:"routes"`
				History     []json.RawMessage `json:"history"`
			}
			Expect(json.Unmarshal([]byte(out), &got)).To(Succeed())
			Expect(got.BestFitness).To(Equal(85.0))
			Expect(got.Generations).To(Equal(5))
			Expect(got.Seed).To(Equal(int64(3)))
			Expect(got.Routes).To(HaveLen(3))
			Expect(got.History).To(HaveLen(6))
		})

		It("writes the Prometheus textfile when asked", func() {
			path := filepath.Join(GinkgoT().TempDir(), "fctp.prom")
			args := append(append([]string{}, textbookArgs...), "4", "5", "0")
			code, _, _ := run(append(args, "--seed", "9", "--metrics-file", path)...)
			Expect(code).To(Equal(cli.ExitOK))

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("fctp_generations_evaluated_total 5"))
			Expect(string(data)).To(ContainSubstring("fctp_best_fitness 85"))
		})

		It("logs each generation at debug level", func() {
			args := append(append([]string{}, textbookArgs...), "2", "3", "0")
			code, _, errOut := run(append(args, "--seed", "5", "--log-level", "debug", "--log-format", "json")...)
			Expect(code).To(Equal(cli.ExitOK))
			Expect(strings.Count(errOut, `"msg":"generation evaluated"`)).To(Equal(3))
			Expect(errOut).To(ContainSubstring(`"msg":"genetic search finished"`))
		})
	})
})

var _ = Describe("generate", func() {
	It("writes an over-supplied text instance that reads back", func() {
		code, out, _ := run("generate", "--sources", "3", "--destinations", "4", "--seed", "11")
		Expect(code).To(Equal(cli.ExitOK))

		p, err := transport.ReadText(strings.NewReader(out))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Sources()).To(Equal(3))
		Expect(p.Destinations()).To(Equal(4))
		Expect(p.TotalSupply()).To(BeNumerically(">=", p.TotalDemand()))
	})

	It("is reproducible for a fixed seed", func() {
		_, first, _ := run("generate", "--seed", "5", "--format", "yaml")
		_, second, _ := run("generate", "--seed", "5", "--format", "yaml")
		Expect(first).To(Equal(second))

		_, err := transport.ReadYAML(strings.NewReader(first))
		Expect(err).NotTo(HaveOccurred())
	})

	It("writes to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "inst.txt")
		code, out, _ := run("generate", "--sources", "2", "--destinations", "2", "--seed", "1", "--out", path)
		Expect(code).To(Equal(cli.ExitOK))
		Expect(out).To(BeEmpty())

		p, err := transport.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Sources()).To(Equal(2))
	})

	It("rejects bad sizes and formats", func() {
		code, _, _ := run("generate", "--sources", "0")
		Expect(code).To(Equal(cli.ExitMalformed))

		code, _, _ = run("generate", "--format", "csv")
		Expect(code).To(Equal(cli.ExitUsage))
	})
})
