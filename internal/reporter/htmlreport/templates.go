package htmlreport

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{ .Title }}</title>
    <style>
        body { font-family: sans-serif; margin: 2em; color: #222; }
        h1 { margin-bottom: 0; }
        .generated { color: #777; margin-top: 0.2em; }
        .cards { display: flex; gap: 1em; margin: 1.5em 0; }
        .card { border: 1px solid #ddd; border-radius: 4px; padding: 0.8em 1.2em; min-width: 7em; text-align: center; }
        .card .value { font-size: 1.8em; font-weight: bold; }
        .passed { color: #4caf50; }
        .failed { color: #f44336; }
        .error { color: #ff9800; }
        .skipped { color: #9e9e9e; }
        table { border-collapse: collapse; margin: 1em 0 2em; }
        th, td { border: 1px solid #ddd; padding: 0.4em 0.8em; text-align: left; }
        th { background: #f5f5f5; }
        td.num { text-align: right; }
        .legend { font-size: 0.9em; }
        .legend span { margin-right: 1em; }
        .swatch { display: inline-block; width: 0.8em; height: 0.8em; margin-right: 0.3em; }
    </style>
</head>
<body>
    <h1>{{ .Title }}</h1>
    <p class="generated">Generated on: {{ .GeneratedAt }}</p>

    <div class="cards">
        <div class="card"><div class="value">{{ .TotalSuites }}</div>Suites</div>
        <div class="card"><div class="value">{{ .TotalCases }}</div>Cases</div>
        <div class="card"><div class="value passed">{{ .Passed }}</div>Passed</div>
        <div class="card"><div class="value failed">{{ .Failed }}</div>Failed</div>
        <div class="card"><div class="value error">{{ .Errors }}</div>Errors</div>
        <div class="card"><div class="value skipped">{{ .Skipped }}</div>Skipped</div>
    </div>

    {{ if .OverallPie }}
    <h2>Result Distribution</h2>
    <svg id="overall-pie" width="120" height="120" viewBox="0 0 120 120" role="img">
        {{ range .OverallPie }}
        {{ if .Full }}<circle cx="60" cy="60" r="50" fill="{{ .Color }}"/>{{ else }}<path d="{{ .PathD }}" fill="{{ .Color }}"/>{{ end }}
        {{ end }}
    </svg>
    <p class="legend">
        {{ range .OverallPie }}<span><span class="swatch" style="background:{{ .Color }}"></span>{{ .Label }}: {{ .Count }}</span>{{ end }}
    </p>
    {{ end }}

    <h2>Test Suites</h2>
    <table id="suites">
        <tr><th>Suite</th><th>Tests</th><th>Passed</th><th>Failed</th><th>Errors</th><th>Skipped</th><th>Time (s)</th><th>Timestamp</th></tr>
        {{ range .Suites }}
        <tr>
            <td>{{ .Name }}</td>
            <td class="num">{{ .Tests }}</td>
            <td class="num">{{ .Passed }}</td>
            <td class="num">{{ .Failures }}</td>
            <td class="num">{{ .Errors }}</td>
            <td class="num">{{ .Skipped }}</td>
            <td class="num">{{ .ExecutionTime }}</td>
            <td>{{ .Timestamp }}</td>
        </tr>
        {{ end }}
    </table>

    {{ if .Slowest }}
    <h2>Slowest Test Classes</h2>
    <table id="slowest">
        <tr><th>Class</th><th>Cases</th><th>Failed</th><th>Time (s)</th></tr>
        {{ range .Slowest }}
        <tr>
            <td>{{ .Name }}</td>
            <td class="num">{{ .Cases }}</td>
            <td class="num">{{ .Failed }}</td>
            <td class="num">{{ .ExecutionTime }}</td>
        </tr>
        {{ end }}
    </table>
    {{ end }}

    {{ if .Failures }}
    <h2>Failed Test Cases</h2>
    <table id="failures">
        <tr><th>Test</th><th>Class</th><th>Module</th><th>Reason</th></tr>
        {{ range .Failures }}
        <tr><td>{{ .Name }}</td><td>{{ .Class }}</td><td>{{ .Module }}</td><td>{{ .Reason }}</td></tr>
        {{ end }}
    </table>
    {{ end }}

    {{ if .Skips }}
    <h2>Skipped Test Cases</h2>
    <table id="skips">
        <tr><th>Test</th><th>Class</th><th>Module</th><th>Reason</th></tr>
        {{ range .Skips }}
        <tr><td>{{ .Name }}</td><td>{{ .Class }}</td><td>{{ .Module }}</td><td>{{ .Reason }}</td></tr>
        {{ end }}
    </table>
    {{ end }}
</body>
</html>`
