// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"encoding/json"
	"strings"
)

// bookmarkletSource runs on the reservation page. It reads the day from the
// page URL (or asks), groups visible slot labels by the nearest
// [data-court] ancestor (or the page's court parameter), and posts them to
// INGEST_URL.
const bookmarkletSource = `(function(){
var u=new URL(location.href);
var day=u.searchParams.get('day')||prompt('Day (Saturday or Sunday)?','Saturday');
if(!day){return;}
var courts={};
document.querySelectorAll('.slot,.time-slot,.slot-label,.reservation-time,time,[data-time]').forEach(function(el){
var t=(el.getAttribute('data-time')||el.textContent||'').replace(/\s+/g,' ').trim();
if(!/\d/.test(t)){return;}
var c=el.closest('[data-court]');
var name=c?c.getAttribute('data-court'):u.searchParams.get('court');
if(!name){return;}
(courts[name]=courts[name]||[]).push(t);
});
fetch(INGEST_URL,{method:'POST',headers:{'Content-Type':'application/json'},body:JSON.stringify({day:day,courts:courts})})
.then(function(r){return r.json();})
.then(function(j){alert(j.imported!==undefined?'Imported '+j.imported+' slots for '+j.day:(j.message||j.error));})
.catch(function(e){alert('Import failed: '+e);});
})();`

// BookmarkletScript returns the one-line importer script posting to ingestURL.
func BookmarkletScript(ingestURL string) string {
	quoted, _ := json.Marshal(ingestURL)
	script := strings.ReplaceAll(bookmarkletSource, "INGEST_URL", string(quoted))
	return strings.ReplaceAll(script, "\n", "")
}
