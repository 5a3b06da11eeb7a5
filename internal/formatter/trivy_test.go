package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const trivyVulnerabilities = `{
  "Results": [
    {
      "Target": "package-lock.json",
      "Type": "npm",
      "Vulnerabilities": [
        {"VulnerabilityID": "CVE-2024-1234", "PkgName": "example-pkg", "InstalledVersion": "1.0.0", "FixedVersion": "1.0.1", "Severity": "CRITICAL", "Title": "Critical vulnerability in example-pkg"},
        {"VulnerabilityID": "CVE-2024-5678", "PkgName": "another-pkg", "InstalledVersion": "2.0.0", "FixedVersion": "", "Severity": "HIGH", "Title": "High severity issue"},
        {"VulnerabilityID": "CVE-2024-9999", "PkgName": "low-pkg", "InstalledVersion": "3.0.0", "FixedVersion": "3.0.1", "Severity": "LOW", "Title": "Low severity issue"}
      ]
    }
  ]
}`

func TestTrivyFormatter_Clean(t *testing.T) {
	md := render(t, NewTrivyFormatter(), `{"Results": []}`)

	assert.Contains(t, md, "Security Scan Report (Trivy)")
	assert.Contains(t, md, "## ✅ Security Status\n\nNo HIGH/CRITICAL vulnerabilities or secrets detected.")
	assert.NotContains(t, md, "Vulnerability Details")
	assert.Contains(t, md, "| **Total** | **0** |")
}

func TestTrivyFormatter_HighCritical(t *testing.T) {
	md := render(t, NewTrivyFormatter(), trivyVulnerabilities)

	assert.Contains(t, md, "## ⚠️ Security Status")
	assert.Contains(t, md, "Found **2** HIGH/CRITICAL")
	assert.Contains(t, md, "| 🔴 CRITICAL | 1 |")
	assert.Contains(t, md, "| 🟠 HIGH | 1 |")
	assert.Contains(t, md, "| 🟡 MEDIUM | 0 |")
	assert.Contains(t, md, "### 🔴 CRITICAL (1)")
	assert.Contains(t, md, "| CVE-2024-1234 | example-pkg | 1.0.0 | 1.0.1 | Critical vulnerability in example-pkg | package-lock.json |")
	assert.Contains(t, md, "| CVE-2024-5678 | another-pkg | 2.0.0 | — |")
	assert.NotContains(t, md, "### 🟡 MEDIUM")
	assert.Less(t, strings.Index(md, "CVE-2024-1234"), strings.Index(md, "CVE-2024-9999"))
}

func TestTrivyFormatter_LowOnlyIsClean(t *testing.T) {
	md := render(t, NewTrivyFormatter(), `{"Results": [{"Target": "go.sum", "Vulnerabilities": [
		{"VulnerabilityID": "CVE-1", "PkgName": "p", "InstalledVersion": "1", "Severity": "LOW", "Title": "t"}]}]}`)

	assert.Contains(t, md, "## ✅ Security Status")
	assert.Contains(t, md, "### 🔵 LOW (1)")
}

func TestTrivyFormatter_Secrets(t *testing.T) {
	md := render(t, NewTrivyFormatter(), `{"Results": [{"Target": "config.yml", "Type": "yaml", "Secrets": [
		{"RuleID": "aws-access-key-id", "Category": "AWS", "Title": "AWS Access Key ID", "Severity": "CRITICAL"}]}]}`)

	assert.Contains(t, md, "## ⚠️ Security Status")
	assert.Contains(t, md, "## 🔑 Detected Secrets")
	assert.Contains(t, md, "| aws-access-key-id | AWS | AWS Access Key ID | 🔴 CRITICAL | config.yml |")
	assert.Contains(t, md, "- **Secrets**: 1")
}

func TestTrivyFormatter_Misconfigurations(t *testing.T) {
	md := render(t, NewTrivyFormatter(), `{"Results": [{"Target": "Dockerfile", "Misconfigurations": [
		{"ID": "DS002", "Title": "Image user should not be root", "Severity": "HIGH", "Status": "FAIL"},
		{"ID": "DS001", "Title": "Passing check", "Severity": "LOW", "Status": "PASS"}]}]}`)

	assert.Contains(t, md, "## ⚙️ Misconfigurations")
	assert.Contains(t, md, "| DS002 | 🟠 HIGH | Image user should not be root | Dockerfile |")
	assert.NotContains(t, md, "DS001")
	assert.Contains(t, md, "## ✅ Security Status")
}

func TestTrivyFormatter_TruncatesTitles(t *testing.T) {
	long := strings.Repeat("x", 70)
	md := render(t, NewTrivyFormatter(), `{"Results": [{"Target": "t", "Vulnerabilities": [
		{"VulnerabilityID": "CVE-1", "PkgName": "p", "Severity": "HIGH", "Title": "`+long+`"}]}]}`)

	assert.Contains(t, md, strings.Repeat("x", 60)+"…")
	assert.NotContains(t, md, strings.Repeat("x", 61))
}

func TestTrivyFormatter_Guidelines(t *testing.T) {
	md := render(t, NewTrivyFormatter(), `{"Results": []}`)

	assert.Contains(t, md, "## Guidelines")
	assert.Contains(t, md, "- **CRITICAL/HIGH**: Must be fixed before merging")
	assert.Contains(t, md, "Generated by [Trivy](https://aquasecurity.github.io/trivy/)")
}

func TestDependenciesFormatter_Clean(t *testing.T) {
	md := render(t, NewDependenciesFormatter(), `{"Results": []}`)

	assert.Contains(t, md, "Dependency Vulnerability Report")
	assert.Contains(t, md, "No vulnerabilities detected")
	assert.Contains(t, md, "Guidelines")
	assert.Contains(t, md, "Trivy")
	assert.Contains(t, md, "dependencies-report.json")
}

func TestDependenciesFormatter_Sections(t *testing.T) {
	md := render(t, NewDependenciesFormatter(), `{"Results": [{"Target": "package-lock.json", "Type": "npm", "Vulnerabilities": [
		{"VulnerabilityID": "CVE-2021-1234", "PkgName": "lodash", "InstalledVersion": "4.17.20", "FixedVersion": "4.17.21", "Severity": "CRITICAL", "Title": "Prototype Pollution in lodash"},
		{"VulnerabilityID": "CVE-2021-5678", "PkgName": "express", "InstalledVersion": "4.17.0", "FixedVersion": "4.17.3", "Severity": "HIGH", "Title": "Open Redirect in express"},
		{"VulnerabilityID": "CVE-2021-9999", "PkgName": "debug", "InstalledVersion": "2.6.8", "FixedVersion": "2.6.9", "Severity": "LOW", "Title": "ReDoS in debug"}]}]}`)

	assert.Contains(t, md, "## 🔴 Critical Vulnerabilities (1)")
	assert.Contains(t, md, "## 🟠 High Vulnerabilities (1)")
	assert.Contains(t, md, "## 🔵 Low Vulnerabilities (1)")
	assert.Contains(t, md, "CVE-2021-1234")
	assert.Contains(t, md, "lodash")
	assert.Contains(t, md, "Found **3** vulnerability(ies) across **3** package(s).")
	assert.NotContains(t, md, "No vulnerabilities detected")
}

func TestDependenciesFormatter_SummaryLabels(t *testing.T) {
	md := render(t, NewDependenciesFormatter(), `{"Results": [{"Target": "package-lock.json", "Vulnerabilities": [
		{"VulnerabilityID": "CVE-A", "PkgName": "pkg-a", "InstalledVersion": "1.0.0", "Severity": "CRITICAL", "Title": "Critical issue"},
		{"VulnerabilityID": "CVE-B", "PkgName": "pkg-b", "InstalledVersion": "2.0.0", "Severity": "MEDIUM", "Title": "Medium issue"}]}]}`)

	assert.Contains(t, md, "| 🔴 Critical | 1 |")
	assert.Contains(t, md, "| 🟡 Medium | 1 |")
	assert.Contains(t, md, "| 🟠 High | 0 |")
}
