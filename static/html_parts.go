// Package static holds the fragments of the preview page.
package static

import "strings"

var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <title>Branching blue noise</title>
		<style>
			body {
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				width: 100%;
				height: 100vh;
				box-sizing: border-box;
			}

			#left-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
			}

			#right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
				border-left: 5px solid #757575;
				overflow-y: auto;
				overflow-x: auto;
				background-color: #1e1e1e;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
				color: #d3d3d3;
				font-family: Consolas, monospace;
			}

			#chart-container {
				width: 100%;
				height: 400px;
			}

			input[type="number"],
			input[type="submit"] {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				margin: 5px 0;
				border-radius: 4px;
			}

			label {
				color: #d3d3d3;
			}

			h1 {
				color: #d3d3d3;
			}

			input[type="submit"]:hover {
				background-color: #444;
				cursor: pointer;
			}

			/* dark scrollbars */
			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}

			::-webkit-scrollbar-track {
				background-color: #2b2b2b;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Sampler parameters</h1>
                <form id="diagram-form" method="POST">
                    <label for="width">Width:</label>
                    <input type="number" id="width" name="width" value="{{width}}" min="1" max="5000" step="any"><br><br>
                    <label for="height">Height:</label>
                    <input type="number" id="height" name="height" value="{{height}}" min="1" max="5000" step="any"><br><br>
                    <label for="radius">Radius:</label>
                    <input type="number" id="radius" name="radius" value="{{radius}}" min="1.5" step="any"><br><br>
                    <label for="children">Children per sample (0 = unlimited):</label>
                    <input type="number" id="children" name="children" value="{{children}}" min="0"><br><br>
                    <label for="angle">Angle (degrees):</label>
                    <input type="number" id="angle" name="angle" value="{{angle}}" min="1" max="360" step="any"><br><br>
                    <label for="seed">Seed (0 = random):</label>
                    <input type="number" id="seed" name="seed" value="{{seed}}" min="0"><br><br>
                    <input type="submit" value="Generate">
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Logs</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            document.getElementById('diagram-form').addEventListener('submit', function (e) {
                e.preventDefault();
                const formData = new FormData(this);
                const params = new URLSearchParams(formData).toString();

                fetch('/', {
                    method: 'POST',
                    body: params,
                    headers: {
                        'Content-Type': 'application/x-www-form-urlencoded'
                    }
                })
                .then(response => {
                    if (!response.ok) {
                        throw new Error('request failed: ' + response.status);
                    }
                    return response.text();
                })
                .then(html => {
                    document.open();
                    document.write(html);
                    document.close();
                })
                .catch(error => {
                    console.error('error:', error);
                });
            });
        </script>
    </body>
    </html>
    `
)

// Form fills the parameter placeholders of Part1.
func Form(width, height, radius, children, angle, seed string) string {
	return strings.NewReplacer(
		"{{width}}", width,
		"{{height}}", height,
		"{{radius}}", radius,
		"{{children}}", children,
		"{{angle}}", angle,
		"{{seed}}", seed,
	).Replace(Part1)
}
