package templates

// Settings template - display preferences stored in cookies.

func GetSettingsTemplate() string {
	return settingsContent
}

var settingsContent = `{{define "content"}}
<h1>Settings</h1>
<form action="/settings" method="POST" class="settings-form">
  <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
  <fieldset>
    <legend>Translations</legend>
    {{range .TranslationOptions}}<label><input type="checkbox" name="translation" value="{{.Value}}"{{if .Checked}} checked{{end}}> {{.Value}}</label>
    {{end}}
  </fieldset>
  <fieldset>
    <legend>Transliterations</legend>
    {{range .TransliterationOptions}}<label><input type="checkbox" name="transliteration" value="{{.Value}}"{{if .Checked}} checked{{end}}> {{.Value}}</label>
    {{end}}
  </fieldset>
  <fieldset>
    <legend>Display</legend>
    <label><input type="checkbox" name="unicode" value="1"{{if .Prefs.IsUnicode}} checked{{end}}> Unicode Gurmukhi</label>
    <label><input type="checkbox" name="shabad_audio_player" value="1"{{if .Prefs.ShowShabadAudioPlayer}} checked{{end}}> Shabad audio player</label>
    <label><input type="checkbox" name="pin_settings" value="1"{{if .Prefs.ShowPinSettings}} checked{{end}}> Pin settings</label>
  </fieldset>
  <button type="submit" class="btn-primary">{{i18n "btn.save"}}</button>
</form>
{{end}}`
