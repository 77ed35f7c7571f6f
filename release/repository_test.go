package release_test

import (
	// Stdlib
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	// Internal
	"github.com/salsaflow/release-bump/config"
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/git"
	. "github.com/salsaflow/release-bump/release"

	// Vendor
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("GitRepository", func() {

	var (
		cwd  string
		dir  string
		repo *GitRepository
	)

	run := func(args ...string) string {
		stdout, err := git.Run(args...)
		Expect(err).ToNot(HaveOccurred())
		return strings.TrimSpace(stdout.String())
	}
	writeManifest := func(content string) {
		Expect(ioutil.WriteFile("setup.py", []byte(content), 0644)).To(Succeed())
	}
	readManifest := func() string {
		content, err := ioutil.ReadFile("setup.py")
		Expect(err).ToNot(HaveOccurred())
		return string(content)
	}

	BeforeEach(func() {
		if _, err := exec.LookPath("git"); err != nil {
			Skip("git executable not found")
		}

		var err error
		cwd, err = os.Getwd()
		Expect(err).ToNot(HaveOccurred())

		dir, err = ioutil.TempDir("", "release-bump-git")
		Expect(err).ToNot(HaveOccurred())
		dir, err = filepath.EvalSymlinks(dir)
		Expect(err).ToNot(HaveOccurred())
		Expect(os.Chdir(dir)).To(Succeed())

		run("init", "-q")
		run("config", "user.name", "Release Bump")
		run("config", "user.email", "release-bump@example.com")
		run("config", "commit.gpgsign", "false")
		run("config", "tag.gpgsign", "false")

		repo = NewGitRepository(false)
	})

	AfterEach(func() {
		if cwd != "" {
			Expect(os.Chdir(cwd)).To(Succeed())
		}
		if dir != "" {
			os.RemoveAll(dir)
		}
	})

	Context("with an initial commit", func() {

		BeforeEach(func() {
			writeManifest(testManifest)
			run("add", "setup.py")
			run("commit", "-q", "-m", "Initial commit")
		})

		It("should record the release", func() {
			res, err := Bump(repo, &Options{Kind: "minor", Config: config.Default()})
			Expect(err).ToNot(HaveOccurred())
			Expect(res.String()).To(Equal("Old version: 0.1.0, new version: 0.2.0"))

			Expect(readManifest()).To(Equal("name='x'\nversion='0.2.0',\nzip_safe=False\n"))
			Expect(run("log", "-1", "--format=%s")).To(Equal("New release: v0.2.0"))
			Expect(run("tag", "--list")).To(Equal("v0.2.0"))
			Expect(run("rev-parse", "v0.2.0^{commit}")).To(Equal(run("rev-parse", "HEAD")))
			Expect(run("status", "--porcelain")).To(BeEmpty())
		})

		It("should create annotated tags when configured to", func() {
			repo = NewGitRepository(true)

			_, err := Bump(repo, &Options{Kind: "patch", Config: config.Default()})
			Expect(err).ToNot(HaveOccurred())
			Expect(run("cat-file", "-t", "v0.1.1")).To(Equal("tag"))
			Expect(run("tag", "-l", "--format=%(contents:subject)", "v0.1.1")).
				To(Equal("New release: v0.1.1"))
		})

		It("should refuse to bump to an existing tag", func() {
			run("tag", "v1.0.0")

			_, err := Bump(repo, &Options{Kind: "major", Config: config.Default()})
			Expect(errs.RootCause(err)).To(BeAssignableToTypeOf(&git.ErrTagExists{}))
			Expect(readManifest()).To(Equal(testManifest))
		})

		It("should refuse to commit nothing", func() {
			_, err := repo.Commit("New release: v0.1.1")
			Expect(errs.RootCause(err)).To(Equal(git.ErrNothingStaged))
		})

		It("should revert the repository steps on rollback", func() {
			head := run("rev-parse", "HEAD")
			writeManifest("version='0.1.1',\n")

			unstage, err := repo.Stage("setup.py")
			Expect(err).ToNot(HaveOccurred())
			uncommit, err := repo.Commit("New release: v0.1.1")
			Expect(err).ToNot(HaveOccurred())
			untag, err := repo.Tag("v0.1.1", "New release: v0.1.1")
			Expect(err).ToNot(HaveOccurred())

			Expect(untag.Rollback()).To(Succeed())
			Expect(run("tag", "--list")).To(BeEmpty())

			Expect(uncommit.Rollback()).To(Succeed())
			Expect(run("rev-parse", "HEAD")).To(Equal(head))
			Expect(run("diff", "--cached", "--name-only")).To(Equal("setup.py"))

			Expect(unstage.Rollback()).To(Succeed())
			Expect(run("diff", "--cached", "--name-only")).To(BeEmpty())
			Expect(readManifest()).To(Equal("version='0.1.1',\n"))
		})
	})

	Context("without any commit", func() {

		It("should create and drop the initial commit", func() {
			writeManifest(testManifest)

			unstage, err := repo.Stage("setup.py")
			Expect(err).ToNot(HaveOccurred())
			uncommit, err := repo.Commit("New release: v0.1.0")
			Expect(err).ToNot(HaveOccurred())

			head, err := git.HeadHexsha()
			Expect(err).ToNot(HaveOccurred())
			Expect(head).ToNot(BeEmpty())

			Expect(uncommit.Rollback()).To(Succeed())
			head, err = git.HeadHexsha()
			Expect(err).ToNot(HaveOccurred())
			Expect(head).To(BeEmpty())

			Expect(unstage.Rollback()).To(Succeed())
			Expect(run("status", "--porcelain")).To(Equal("?? setup.py"))
		})
	})
})
